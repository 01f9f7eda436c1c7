// reset-key rotates a warehouseman's secret key and prints the new one.
// Usage: reset-key <warehouseman-id>
package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	if len(os.Args) < 2 {
		log.Fatal("Usage: reset-key <warehouseman-id>")
	}
	id, err := strconv.ParseUint(os.Args[1], 10, 32)
	if err != nil {
		log.Fatalf("Invalid warehouseman id %q: %v", os.Args[1], err)
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find the warehouseman
	var worker model.Warehouseman
	if err := db.First(&worker, "id = ?", uint(id)).Error; err != nil {
		log.Fatalf("Warehouseman %d not found in database: %v", id, err)
	}

	// 4. Generate and hash a new key
	newKey := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	hashed, err := bcrypt.GenerateFromPassword([]byte(newKey), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash secret key: %v", err)
	}

	// 5. Update, invalidating any active session
	updates := map[string]interface{}{
		"secret_key":    string(hashed),
		"token_version": "",
	}
	if err := db.Model(&worker).Updates(updates).Error; err != nil {
		log.Fatalf("Failed to update secret key in DB: %v", err)
	}

	log.Printf("Success! New secret key for %s (id %d): %s", worker.Name, worker.ID, newKey)
}
