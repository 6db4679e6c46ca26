// Package testutils provides testing utilities for the Scry vocabulary engine.
//
// This package contains helpers for:
// 1. Creating test vocabulary items with functional options
// 2. Capturing slog output in memory for assertions
//
// # Test Vocabulary
//
//	// Create an item with default values:
//	item := testutils.MustCreateVocabularyItem(t)
//
//	// Create an item with specific options:
//	item := testutils.MustCreateVocabularyItem(t,
//	    testutils.WithWord("cat"),
//	    testutils.WithDifficulty(0.8),
//	)
//
// # Log Capture
//
//	handler := testutils.NewTestSlogHandler()
//	logger := slog.New(handler)
//	// ... exercise code ...
//	entries := handler.EntriesWithMessage("quiz completed")
package testutils
