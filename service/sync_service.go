package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	model "github.com/Itish41/NyayaMitra/models"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	corpusIndexName       = "legal_documents"
	maxLoggedResponseLen  = 500
	defaultPopularQueries = 10
)

// CorpusSyncService owns corpus ingestion and query analytics. It loads
// the retrieval corpus from Postgres into the in-memory store, with an
// optional S3 bootstrap and an optional Elasticsearch secondary index.
type CorpusSyncService struct {
	db       *gorm.DB
	store    *DocumentStore
	s3Client *s3.S3
	esClient *elasticsearch.Client
}

// NewCorpusSyncService wires the optional S3 and Elasticsearch clients
// from the environment. Both are best-effort; the service works with
// just the database.
func NewCorpusSyncService(db *gorm.DB, store *DocumentStore) (*CorpusSyncService, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	if store == nil {
		return nil, fmt.Errorf("document store is required")
	}

	svc := &CorpusSyncService{db: db, store: store}

	region := os.Getenv("CORPUS_S3_REGION")
	endpoint := os.Getenv("CORPUS_S3_ENDPOINT")
	accessKey := os.Getenv("CORPUS_S3_ACCESS_KEY")
	secretKey := os.Getenv("CORPUS_S3_SECRET_KEY")
	if region != "" && endpoint != "" && accessKey != "" && secretKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region:           aws.String(region),
			Endpoint:         aws.String(endpoint),
			DisableSSL:       aws.Bool(false),
			Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
			S3ForcePathStyle: aws.Bool(true),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		svc.s3Client = s3.New(sess)
		log.Println("Corpus S3 bootstrap configured")
	}

	esURL := os.Getenv("ELASTICSEARCH_URL")
	if esURL != "" {
		esClient, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{esURL},
		})
		if err != nil {
			log.Printf("Warning: Failed to create Elasticsearch client: %v", err)
		} else {
			svc.esClient = esClient
		}
	}

	return svc, nil
}

// SyncCorpus loads the retrieval corpus: S3 bootstrap (if configured),
// then the database, then the built-in seed set when the database is
// empty. The in-memory store is only replaced once a full set is ready.
func (s *CorpusSyncService) SyncCorpus(ctx context.Context) error {
	log.Println("Starting corpus sync")

	if fetched, err := s.fetchCorpusFromS3(ctx); err != nil {
		log.Printf("Warning: S3 corpus fetch failed: %v", err)
	} else if len(fetched) > 0 {
		if err := s.storeDocuments(fetched); err != nil {
			log.Printf("Warning: failed to persist S3 corpus: %v", err)
		}
	}

	docs, err := s.loadDocumentsFromDB()
	if err != nil {
		return fmt.Errorf("failed to load corpus from database: %w", err)
	}

	if len(docs) == 0 {
		log.Println("No corpus in database, persisting seed documents")
		if err := s.storeDocuments(seedCorpus()); err != nil {
			log.Printf("Warning: failed to persist seed corpus: %v", err)
		}
		docs, err = s.loadDocumentsFromDB()
		if err != nil || len(docs) == 0 {
			// Serve the seed set directly rather than starting empty.
			docs = seedCorpus()
		}
	}

	if err := s.store.ReplaceAll(docs); err != nil {
		return fmt.Errorf("failed to load corpus into store: %w", err)
	}

	s.indexDocuments(docs)
	log.Printf("Corpus sync complete: %d documents", len(docs))
	return nil
}

// storeDocuments upserts documents into Postgres keyed by source and
// section. Malformed documents are skipped with a log line so one bad
// record cannot abort ingestion.
func (s *CorpusSyncService) storeDocuments(docs []model.CorpusDocument) error {
	stored := 0
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			log.Printf("Skipping malformed document: %v", err)
			continue
		}

		keywords, err := json.Marshal(doc.Keywords)
		if err != nil {
			log.Printf("Skipping document %q: failed to encode keywords: %v", doc.Title, err)
			continue
		}

		record := model.LegalDocument{
			Title:    doc.Title,
			Content:  doc.Content,
			Source:   doc.Source,
			Section:  doc.Section,
			Category: doc.Category,
			Keywords: datatypes.JSON(keywords),
			URL:      doc.URL,
		}

		var existing model.LegalDocument
		err = s.db.Where("source = ? AND section = ?", doc.Source, doc.Section).First(&existing).Error
		switch {
		case err == nil:
			record.ID = existing.ID
			if err := s.db.Save(&record).Error; err != nil {
				log.Printf("Failed to update document %q: %v", doc.Title, err)
				continue
			}
		case err == gorm.ErrRecordNotFound:
			if err := s.db.Create(&record).Error; err != nil {
				log.Printf("Failed to insert document %q: %v", doc.Title, err)
				continue
			}
		default:
			return fmt.Errorf("failed to look up document %q: %w", doc.Title, err)
		}
		stored++
	}
	log.Printf("Persisted %d legal documents", stored)
	return nil
}

func (s *CorpusSyncService) loadDocumentsFromDB() ([]model.CorpusDocument, error) {
	var records []model.LegalDocument
	if err := s.db.Order("created_at asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query legal documents: %w", err)
	}

	docs := make([]model.CorpusDocument, 0, len(records))
	for _, rec := range records {
		var keywords []string
		if len(rec.Keywords) > 0 {
			if err := json.Unmarshal(rec.Keywords, &keywords); err != nil {
				log.Printf("Document %s has unreadable keywords, ignoring them: %v", rec.ID, err)
				keywords = nil
			}
		}
		docs = append(docs, model.CorpusDocument{
			ID:       rec.ID,
			Title:    rec.Title,
			Content:  rec.Content,
			Source:   rec.Source,
			Section:  rec.Section,
			Category: rec.Category,
			Keywords: keywords,
			URL:      rec.URL,
		})
	}
	return docs, nil
}

// fetchCorpusFromS3 downloads the corpus JSON from the configured bucket.
// Returns nil without error when the bootstrap is not configured.
func (s *CorpusSyncService) fetchCorpusFromS3(ctx context.Context) ([]model.CorpusDocument, error) {
	if s.s3Client == nil {
		return nil, nil
	}
	bucket := os.Getenv("CORPUS_S3_BUCKET")
	key := os.Getenv("CORPUS_S3_KEY")
	if bucket == "" || key == "" {
		return nil, nil
	}

	out, err := s.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus object body: %w", err)
	}

	var docs []model.CorpusDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode corpus JSON: %w", err)
	}
	log.Printf("Fetched %d documents from S3 corpus", len(docs))
	return docs, nil
}

// indexDocuments mirrors the corpus into Elasticsearch. Indexing is
// best-effort and never fails the sync.
func (s *CorpusSyncService) indexDocuments(docs []model.CorpusDocument) {
	if s.esClient == nil {
		log.Println("Elasticsearch client not initialized. Skipping indexing.")
		return
	}

	indexed := 0
	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			log.Printf("Failed to marshal document %q for indexing: %v", doc.Title, err)
			continue
		}

		opts := []func(*esapi.IndexRequest){
			s.esClient.Index.WithContext(context.Background()),
		}
		if doc.ID != "" {
			opts = append(opts, s.esClient.Index.WithDocumentID(doc.ID))
		}

		res, err := s.esClient.Index(corpusIndexName, bytes.NewReader(body), opts...)
		if err != nil {
			log.Printf("Elasticsearch indexing error: %v", err)
			continue
		}
		if res.IsError() {
			log.Printf("Elasticsearch indexing failed: %s", res.String())
			res.Body.Close()
			continue
		}
		res.Body.Close()
		indexed++
	}
	log.Printf("Indexed %d documents in Elasticsearch", indexed)
}

// SearchDocuments answers the document search endpoint. Elasticsearch
// serves the query when available; otherwise the lexical ranker runs over
// the in-memory corpus.
func (s *CorpusSyncService) SearchDocuments(query string, limit int) ([]model.CorpusDocument, error) {
	if s.esClient == nil {
		return s.lexicalSearch(query, limit), nil
	}

	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title", "content", "keywords"},
			},
		},
	}
	body, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(context.Background()),
		s.esClient.Search.WithIndex(corpusIndexName),
		s.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		log.Printf("Elasticsearch search failed, using lexical fallback: %v", err)
		return s.lexicalSearch(query, limit), nil
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("Elasticsearch search error, using lexical fallback: %s", res.String())
		return s.lexicalSearch(query, limit), nil
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source model.CorpusDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	docs := make([]model.CorpusDocument, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		docs = append(docs, hit.Source)
		if limit > 0 && len(docs) == limit {
			break
		}
	}
	return docs, nil
}

func (s *CorpusSyncService) lexicalSearch(query string, limit int) []model.CorpusDocument {
	matches := RankDocuments(query, s.store.Snapshot(), limit)
	docs := make([]model.CorpusDocument, 0, len(matches))
	for _, m := range matches {
		docs = append(docs, *m.Document)
	}
	return docs
}

// LogUserQuery persists an answered query for analytics and returns the
// record ID so feedback can reference it.
func (s *CorpusSyncService) LogUserQuery(query, response, category string, sources []model.Citation, responseTimeMs int) (string, error) {
	responseRunes := []rune(response)
	if len(responseRunes) > maxLoggedResponseLen {
		response = string(responseRunes[:maxLoggedResponseLen])
	}

	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return "", fmt.Errorf("failed to encode response sources: %w", err)
	}

	record := model.LegalQuery{
		QueryText:       query,
		QueryCategory:   category,
		ResponseText:    response,
		ResponseSources: datatypes.JSON(sourcesJSON),
		ResponseTimeMs:  responseTimeMs,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to log query: %w", err)
	}
	return record.ID, nil
}

// SubmitFeedback records a rating against a logged query.
func (s *CorpusSyncService) SubmitFeedback(queryID string, rating int, feedbackText string, isHelpful bool) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	var logged model.LegalQuery
	if err := s.db.First(&logged, "id = ?", queryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("query %s not found", queryID)
		}
		return fmt.Errorf("failed to look up query %s: %w", queryID, err)
	}

	feedback := model.UserFeedback{
		LegalQueryID: queryID,
		Rating:       rating,
		FeedbackText: feedbackText,
		IsHelpful:    isHelpful,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// PopularQuery is one row of the popular-queries report.
type PopularQuery struct {
	QueryText string `json:"query_text"`
	AskCount  int    `json:"ask_count"`
}

// GetPopularQueries returns the most frequently asked query texts.
func (s *CorpusSyncService) GetPopularQueries(limit int) ([]PopularQuery, error) {
	if limit < 1 {
		limit = defaultPopularQueries
	}

	var rows []PopularQuery
	err := s.db.Model(&model.LegalQuery{}).
		Select("query_text, count(*) as ask_count").
		Group("query_text").
		Order("ask_count desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popular queries: %w", err)
	}
	return rows, nil
}

// DocumentSummary is the catalog view of one corpus document.
type DocumentSummary struct {
	Title    string `json:"title"`
	Source   string `json:"source"`
	Section  string `json:"section"`
	Category string `json:"category"`
}

// GetDocumentList returns the catalog of loaded documents.
func (s *CorpusSyncService) GetDocumentList() []DocumentSummary {
	docs := s.store.Snapshot()
	out := make([]DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, DocumentSummary{
			Title:    doc.Title,
			Source:   doc.Source,
			Section:  doc.Section,
			Category: doc.Category,
		})
	}
	return out
}

var _ QueryLogger = (*CorpusSyncService)(nil)
