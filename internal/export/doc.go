// Package export saves catalog artwork to disk.
//
// # Manager
//
// The Manager coordinates the export:
//
//  1. Plan one file per artist image and per song cover
//  2. Group files by source URL so each image is downloaded once
//  3. Download concurrently, retrying with an exponential cooldown
//  4. Resize to the configured maximum and encode as JPEG
//  5. Write the files, skipping ones that already exist
//
// # Basic Usage
//
//	manager := export.NewManager(settings.ToExportConfig(), client, func(e progress.Event) {
//	    fmt.Println(e.Message)
//	})
//
//	if err := manager.Export(ctx, cat); err != nil {
//	    log.Fatal(err)
//	}
//
//	exported, failed, total := manager.GetProgress()
//
// Files land in <path>/artists/<artist>.jpg and
// <path>/covers/<artist> - <title>.jpg.
package export
