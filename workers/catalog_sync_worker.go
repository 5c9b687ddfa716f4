package workers

import (
	"context"
	"log"
	"time"

	"memory-match-system/utils"

	"gorm.io/gorm"
)

// PollCatalog periodically re-fetches the card catalog object from R2 and
// upserts it into the database, so card content edits go live without a
// redeploy. Runs until ctx is cancelled.
func PollCatalog(ctx context.Context, db *gorm.DB, key string, pollInterval time.Duration) {
	log.Println("Starting catalog polling (R2-backed)...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Catalog polling stopped.")
			return
		case <-ticker.C:
			data, err := utils.FetchCatalogObject(ctx, key)
			if err != nil {
				log.Printf("❌ Error fetching catalog object: %v", err)
				continue
			}

			cat, err := utils.ParseCatalog(data)
			if err != nil {
				// Bad object stays out of the DB; the previous catalog keeps serving.
				log.Printf("❌ Invalid catalog object %q: %v", key, err)
				continue
			}

			if err := utils.SeedCatalog(db, cat); err != nil {
				log.Printf("❌ Failed to upsert catalog: %v", err)
				continue
			}
			log.Printf("✅ Catalog synced from R2 (%d mode(s))", len(cat.Modes))
		}
	}
}
