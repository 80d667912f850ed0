// ABOUTME: Basic example showing the ticker feed and article extraction with the Rotter library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	rotter "rotter-news-api/rotter-lib"
)

func main() {
	client, err := rotter.NewClient(rotter.WithQuietMode())
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("=== Last 4 hours ===")
	entries, err := client.RecentEntries(ctx, 4)
	if err != nil {
		log.Fatalf("Error fetching feed: %v", err)
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Published.Format("15:04"), e.Title)
	}

	if len(entries) == 0 {
		return
	}

	fmt.Println("\n=== Latest article ===")
	art, err := client.ExtractArticle(ctx, entries[0].Link)
	if err != nil {
		log.Fatalf("Error extracting article: %v", err)
	}
	if !art.Found() {
		fmt.Println("(no readable text)")
		return
	}
	fmt.Printf("[%s] %s\n", art.StrategyUsed, art.Body)
}
