package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex/internal/repositories/catalog"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	defer client.Close()
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning cached name catalogs...")

	out, err := catalog.ScanCorrupt(ctx, client)
	if err != nil {
		log.Fatal("Scan failed:", err)
	}

	fmt.Printf("\nChecked %d catalogs, found %d corrupted\n", out.Checked, len(out.Corrupt))
	if len(out.Corrupt) == 0 {
		return
	}

	for _, key := range out.Corrupt {
		scope, _ := catalog.ScopeFromKey(key)
		fmt.Printf("  - %s (scope %q)\n", key, scope)
	}

	fmt.Print("\nDelete these entries? The next `pokedex list` refetches them. (yes/no): ")
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range out.Corrupt {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Deleted %s\n", key)
	}
}
