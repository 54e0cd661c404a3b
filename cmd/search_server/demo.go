package main

import (
	"fmt"
	"io"

	"github.com/gcbaptista/go-tfidf-search/internal/analytics"
	"github.com/gcbaptista/go-tfidf-search/internal/duplicates"
	"github.com/gcbaptista/go-tfidf-search/internal/engine"
	"github.com/gcbaptista/go-tfidf-search/internal/logger"
	"github.com/gcbaptista/go-tfidf-search/internal/search"
	"github.com/gcbaptista/go-tfidf-search/model"
)

type demoDocument struct {
	id      int
	text    string
	ratings []int
}

// runDemo plays the sample scenarios against fresh in-memory servers.
func runDemo(w io.Writer) error {
	log := logger.WithComponent("demo")
	scenarios := []struct {
		name string
		run  func(io.Writer) error
	}{
		{"exceptions", runExceptions},
		{"paginator", runPaginator},
		{"empty requests", runEmptyRequests},
		{"remove duplicates", runRemoveDuplicates},
	}

	for _, scenario := range scenarios {
		done := logger.LogDuration(log, scenario.name)
		err := scenario.run(w)
		done()
		if err != nil {
			return fmt.Errorf("scenario %s: %w", scenario.name, err)
		}
	}
	return nil
}

func addDemoDocuments(w io.Writer, server *engine.SearchServer, docs []demoDocument) {
	for _, doc := range docs {
		err := server.AddDocument(model.DocumentInput{
			ID:      doc.id,
			Text:    doc.text,
			Status:  model.StatusActual,
			Ratings: doc.ratings,
		})
		if err != nil {
			fmt.Fprintf(w, "Failed to add document %d: %v\n", doc.id, err)
		}
	}
}

func runExceptions(w io.Writer) error {
	server, err := engine.NewSearchServerFromText("and in on")
	if err != nil {
		return err
	}

	addDemoDocuments(w, server, []demoDocument{
		{1, "big cat fluffy tail", []int{7, 2, 7}},
		{1, "fluffy dog and stylish collar", []int{1, 2}},
		{-1, "fluffy dog and stylish collar", []int{1, 2}},
		{3, "big dog and sta\x12rling evgeniy", []int{1, 3, 2}},
		{4, "big dog starleng evgeniy", []int{1, 1, 1}},
	})

	for _, query := range []string{"fluffy -dog", "fluffy --cat", "fluffy -"} {
		fmt.Fprintf(w, "Search results for query: %s\n", query)
		docs, err := server.FindTopActualDocuments(query)
		if err != nil {
			fmt.Fprintf(w, "Search failed: %v\n", err)
			continue
		}
		for _, doc := range docs {
			fmt.Fprintln(w, doc)
		}
	}

	for _, query := range []string{"fluffy dog", "stylish -cat", "stylish --dog", "fluffy - tail"} {
		fmt.Fprintf(w, "Matching documents for query: %s\n", query)
		for _, id := range server.DocumentIDs() {
			match, err := server.MatchDocument(query, id)
			if err != nil {
				fmt.Fprintf(w, "Matching failed for query %s: %v\n", query, err)
				break
			}
			fmt.Fprintln(w, match)
		}
	}
	return nil
}

func runPaginator(w io.Writer) error {
	server, err := engine.NewSearchServerFromText("and with")
	if err != nil {
		return err
	}

	addDemoDocuments(w, server, []demoDocument{
		{1, "funny pet and nasty rat", []int{7, 2, 7}},
		{2, "funny pet with curly hair", []int{1, 2, 3}},
		{3, "big cat nasty hair", []int{1, 2, 8}},
		{4, "big dog cat Vladislav", []int{1, 3, 2}},
		{5, "big dog hamster Borya", []int{1, 1, 1}},
	})

	docs, err := server.FindTopActualDocuments("curly dog")
	if err != nil {
		return err
	}
	for _, page := range search.Paginate(docs, 2) {
		for _, doc := range page {
			fmt.Fprint(w, doc)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Page break")
	}
	return nil
}

func runEmptyRequests(w io.Writer) error {
	server, err := engine.NewSearchServerFromText("and in at")
	if err != nil {
		return err
	}
	history, err := analytics.NewRequestHistory(server)
	if err != nil {
		return err
	}

	addDemoDocuments(w, server, []demoDocument{
		{1, "curly cat curly tail", []int{7, 2, 7}},
		{2, "curly dog and fancy collar", []int{1, 2, 3}},
		{3, "big cat fancy collar ", []int{1, 2, 8}},
		{4, "big dog sparrow Eugene", []int{1, 3, 2}},
		{5, "big dog sparrow Vasiliy", []int{1, 1, 1}},
	})

	for i := 0; i < analytics.DefaultWindow-1; i++ {
		if _, err := history.FindTopActualDocuments("empty request"); err != nil {
			return err
		}
	}
	for _, query := range []string{"curly dog", "big collar", "sparrow"} {
		if _, err := history.FindTopActualDocuments(query); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Total empty requests: %d\n", history.EmptyCount())
	return nil
}

func runRemoveDuplicates(w io.Writer) error {
	server, err := engine.NewSearchServerFromText("and with")
	if err != nil {
		return err
	}

	addDemoDocuments(w, server, []demoDocument{
		{1, "funny pet and nasty rat", []int{7, 2, 7}},
		{2, "funny pet with curly hair", []int{1, 2}},
		{3, "funny pet with curly hair", []int{1, 2}},
		{4, "funny pet and curly hair", []int{1, 2}},
		{5, "funny funny pet and nasty nasty rat", []int{1, 2}},
		{6, "funny pet and not very nasty rat", []int{1, 2}},
		{7, "very nasty rat and not very funny pet", []int{1, 2}},
		{8, "pet with rat and rat and rat", []int{1, 2}},
		{9, "nasty rat with curly hair", []int{1, 2}},
	})

	fmt.Fprintf(w, "Before duplicates removed: %d\n", server.DocumentCount())
	removed, err := duplicates.RemoveDuplicates(server)
	if err != nil {
		return err
	}
	for _, id := range removed {
		fmt.Fprintf(w, "Found duplicate document id %d\n", id)
	}
	fmt.Fprintf(w, "After duplicates removed: %d\n", server.DocumentCount())
	return nil
}
