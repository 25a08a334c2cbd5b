// cmd/importer/main.go
//
// One-shot directory importer. Reads a JSON array of scraped company
// records and upserts them in batches, keeping a progress file so an
// interrupted import can resume where it stopped.
//
// Usage:
//
//	importer -file merged_companies.json [-progress .import_progress]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"compliance-backend/internal/config"
	companyModel "compliance-backend/internal/domains/company/model"
	companyRepo "compliance-backend/internal/domains/company/repository"
	companyService "compliance-backend/internal/domains/company/service"
	"compliance-backend/internal/infrastructure/database"
	"compliance-backend/pkg/logger"
)

const batchSize = 500

func main() {
	filePath := flag.String("file", "merged_companies.json", "path to the merged companies JSON file")
	progressPath := flag.String("progress", ".import_progress", "path to the resume progress file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}
	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	records, err := loadRecords(*filePath)
	if err != nil {
		log.Fatalf("❌ Failed to load records: %v", err)
	}
	log.Printf("📄 Loaded %d records from %s", len(records), *filePath)

	db := database.NewPostgresDB(&database.DBConfig{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		Username:       cfg.Database.User,
		Password:       cfg.Database.Password,
		DBName:         cfg.Database.Database,
		SSLMode:        cfg.Database.SSLMode,
		MaxConns:       int32(cfg.Database.MaxConns),
		MinConns:       int32(cfg.Database.MinConns),
		MaxRetries:     3,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := companyRepo.NewPostgresCompanyRepository(db.Pool)
	svc := companyService.NewCompanyService(repo, nil)

	// Resume từ batch đã hoàn thành lần chạy trước
	startBatch := readProgress(*progressPath)
	if startBatch > 0 {
		log.Printf("⏩ Resuming from batch %d", startBatch)
	}

	totalInserted, totalUpdated, totalSkipped := 0, 0, 0
	batchCount := (len(records) + batchSize - 1) / batchSize

	for batch := startBatch; batch < batchCount; batch++ {
		start := batch * batchSize
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		result, err := svc.ImportCompanies(ctx, records[start:end])
		if err != nil {
			log.Fatalf("❌ Batch %d failed: %v", batch, err)
		}

		totalInserted += result.Inserted
		totalUpdated += result.Updated
		totalSkipped += result.Skipped

		if err := writeProgress(*progressPath, batch+1); err != nil {
			log.Printf("⚠️  Failed to write progress file: %v", err)
		}

		log.Printf("✅ Batch %d/%d: %d inserted, %d updated, %d skipped",
			batch+1, batchCount, result.Inserted, result.Updated, result.Skipped)
	}

	// Import xong, progress file không cần nữa
	if err := os.Remove(*progressPath); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Failed to remove progress file: %v", err)
	}

	log.Printf("🎉 Import complete: %d inserted, %d updated, %d skipped",
		totalInserted, totalUpdated, totalSkipped)
}

// scrapedRecord matches merged_companies.json. The merge step prefixes
// provenance keys with an underscore, so they differ from the API DTO tags.
type scrapedRecord struct {
	Source      string   `json:"_source"`
	SourceID    string   `json:"_source_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Categories  []string `json:"categories"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email"`
	Website     *string  `json:"website"`
	Address     *string  `json:"address"`
	Suburb      *string  `json:"suburb"`
	City        *string  `json:"city"`
	Province    *string  `json:"province"`
	PostalCode  *string  `json:"postal_code"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Logo        *string  `json:"logo"`
	SourceURL   *string  `json:"source_url"`

	// Một số file scrape cũ chưa qua merge dùng key không có underscore
	AltSource   string `json:"source"`
	AltSourceID string `json:"source_id"`
}

// loadRecords parses the scraped JSON and trims obviously broken rows
// before validation sees them.
func loadRecords(path string) ([]companyModel.UpsertCompanyRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []scrapedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	cleaned := make([]companyModel.UpsertCompanyRequest, 0, len(records))
	for _, record := range records {
		source := strings.TrimSpace(record.Source)
		if source == "" {
			source = strings.TrimSpace(record.AltSource)
		}
		sourceID := strings.TrimSpace(record.SourceID)
		if sourceID == "" {
			sourceID = strings.TrimSpace(record.AltSourceID)
		}
		name := strings.TrimSpace(record.Name)
		if name == "" || source == "" || sourceID == "" {
			continue
		}
		cleaned = append(cleaned, companyModel.UpsertCompanyRequest{
			Source:      source,
			SourceID:    sourceID,
			Name:        name,
			Description: record.Description,
			Category:    record.Category,
			Categories:  record.Categories,
			Phone:       record.Phone,
			Email:       record.Email,
			Website:     record.Website,
			Address:     record.Address,
			Suburb:      record.Suburb,
			City:        record.City,
			Province:    record.Province,
			PostalCode:  record.PostalCode,
			Country:     record.Country,
			Latitude:    record.Latitude,
			Longitude:   record.Longitude,
			Logo:        record.Logo,
			SourceURL:   record.SourceURL,
		})
	}

	return cleaned, nil
}

func readProgress(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func writeProgress(path string, batch int) error {
	return os.WriteFile(path, []byte(strconv.Itoa(batch)), 0o644)
}
