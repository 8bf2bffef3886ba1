// Package catalog turns the two published sheet feeds into a model.Catalog.
//
// The pipeline has three layers:
//   - Mapper converts one parsed row into a model.Song or model.ArtistMeta,
//     applying defaults and dropping rows without a title or artist.
//   - Assembler fetches the song and artist feeds concurrently, falls back to
//     the sheet's first tab when the songs gid is stale, and builds the
//     catalog. Build is the text-only half and needs no network.
//   - Store owns the current catalog for long-lived callers. A refresh
//     replaces it on success and keeps it on failure.
//
// # Basic Usage
//
//	client := http.NewClient()
//	mapper := catalog.NewMapper(catalog.DefaultMapperConfig())
//	asm := catalog.NewAssembler(client, source, mapper, onProgress)
//
//	store := catalog.NewStore(asm)
//	if _, err := store.Refresh(ctx); err != nil {
//	    log.Printf("refresh failed, keeping previous catalog: %v", err)
//	}
//	songs := store.Snapshot().Songs
//
// # Dropped rows
//
// Rows are dropped silently by default. Attach a Diagnostics collector with
// Mapper.WithDiagnostics to find out which rows were skipped and why.
package catalog
