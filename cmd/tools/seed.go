package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"whisper-hub/auth"
	"whisper-hub/domain"
	"whisper-hub/repositories"
)

// Seeds two demo accounts and a short conversation, so a fresh checkout
// has something to look at in the inspector and the client.
func main() {
	dbPath := flag.String("db", "./data", "Path to badger DB")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening badger failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	log := slog.Default()
	users := repositories.NewUserRepository(db)
	messages := repositories.NewMessageRepository(db, log)

	hash, err := auth.HashPassword("Demo-Password-123!")
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashing failed: %v\n", err)
		os.Exit(1)
	}

	aliceID, err := users.CreateUser("alice@example.com", "Alice", hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeding alice failed: %v\n", err)
		os.Exit(1)
	}
	bobID, err := users.CreateUser("bob@example.com", "Bob", hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeding bob failed: %v\n", err)
		os.Exit(1)
	}

	seedMessages := []domain.SendCommand{
		{From: aliceID, To: bobID, Body: "hello"},
		{From: bobID, To: aliceID, Body: "hey, got your message"},
		{From: aliceID, To: bobID, Body: "this one disappears once read", Ephemeral: true},
	}
	for _, cmd := range seedMessages {
		if _, err := messages.Append(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "seeding message failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded users %s (alice) and %s (bob) with %d messages\n",
		aliceID, bobID, len(seedMessages))
}
