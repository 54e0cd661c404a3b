package indexing

import (
	"fmt"
	"testing"

	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// generateTestDocuments creates a slice of test documents for benchmarking
func generateTestDocuments(count int) []model.DocumentInput {
	docs := make([]model.DocumentInput, count)
	for i := 0; i < count; i++ {
		docs[i] = model.DocumentInput{
			ID:      i,
			Text:    fmt.Sprintf("this is test document number %d with some content for indexing tag_%d", i, i%10),
			Status:  model.StatusActual,
			Ratings: []int{i % 5, i % 7, i % 3},
		}
	}
	return docs
}

// createTestService creates a new indexing service for benchmarking
func createTestService() *Service {
	service, _ := NewService(index.NewInvertedIndex(), store.NewDocumentStore(), tokenizer.NewStopWordSet([]string{"is", "with", "for"}))
	return service
}

func BenchmarkAddDocument(b *testing.B) {
	sizes := []int{100, 1000, 5000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("docs_%d", size), func(b *testing.B) {
			docs := generateTestDocuments(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				service := createTestService()
				for _, doc := range docs {
					if err := service.AddDocument(doc); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

func BenchmarkAddDocuments(b *testing.B) {
	sizes := []int{100, 1000, 5000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("docs_%d", size), func(b *testing.B) {
			docs := generateTestDocuments(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				service := createTestService()
				if result := service.AddDocuments(docs); len(result.Failed) > 0 {
					b.Fatalf("unexpected failures: %v", result.Failed)
				}
			}
		})
	}
}
