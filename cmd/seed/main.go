// Command seed writes a starter backing file with sample records for every
// collection, so the server has data to serve on first run.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/pedro-candido/mvvm-app/internal/config"
	"github.com/pedro-candido/mvvm-app/internal/store"
)

func main() {
	cfg := config.Load()
	log.Printf("Writing seed data to %s", cfg.DBFile)

	if _, err := os.Stat(cfg.DBFile); err == nil {
		log.Fatalf("%s already exists, refusing to overwrite", cfg.DBFile)
	}

	doc := map[string][]store.Record{
		"users": {
			{"id": 1, "name": "Ana Souza", "email": "ana@example.com", "avatar": "https://ui-avatars.com/api/?name=Ana+Souza&background=random&color=fff", "createdAt": "2024-01-10T12:00:00Z"},
			{"id": 2, "name": "Bruno Lima", "email": "bruno@example.com", "avatar": "https://ui-avatars.com/api/?name=Bruno+Lima&background=random&color=fff", "createdAt": "2024-01-11T09:30:00Z"},
			{"id": 3, "name": "Carla Mendes", "email": "carla@example.com", "avatar": "https://ui-avatars.com/api/?name=Carla+Mendes&background=random&color=fff", "createdAt": "2024-02-02T18:45:00Z"},
		},
		"posts": {
			{"id": 1, "title": "Hello world", "content": "First post on the platform", "userId": 1, "likes": 4, "createdAt": "2024-02-03T10:00:00Z"},
			{"id": 2, "title": "Travel notes", "content": "Three days in the mountains", "userId": 1, "likes": 12, "createdAt": "2024-02-05T15:20:00Z"},
			{"id": 3, "title": "Recipe: feijoada", "content": "The family recipe, finally written down", "userId": 2, "likes": 27, "createdAt": "2024-02-07T08:10:00Z"},
		},
		"products": {
			{"id": 1, "name": "Wireless headphones", "price": 199.9, "description": "Over-ear, 30h battery", "category": "electronics", "image": "https://picsum.photos/seed/phones/400", "inStock": true, "stock": 23},
			{"id": 2, "name": "Mechanical keyboard", "price": 349.0, "description": "Hot-swappable switches", "category": "electronics", "image": "https://picsum.photos/seed/keyboard/400", "inStock": true, "stock": 8},
			{"id": 3, "name": "Ceramic mug", "price": 39.5, "description": "Hand-painted, 300ml", "category": "home", "image": "https://picsum.photos/seed/mug/400", "inStock": false, "stock": 0},
		},
		"comments": {
			{"id": 1, "postId": 1, "author": "Bruno Lima", "content": "Welcome!", "createdAt": "2024-02-03T11:00:00Z"},
			{"id": 2, "postId": 3, "author": "Ana Souza", "content": "Tried it, delicious", "createdAt": "2024-02-08T19:00:00Z"},
		},
		"categories": {
			{"id": 1, "name": "electronics", "description": "Gadgets and devices", "icon": "cpu"},
			{"id": 2, "name": "home", "description": "Kitchen and decor", "icon": "home"},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("encode seed data: %v", err)
	}
	if err := os.WriteFile(cfg.DBFile, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", cfg.DBFile, err)
	}

	total := 0
	for name, records := range doc {
		log.Printf("  %s: %d records", name, len(records))
		total += len(records)
	}
	log.Printf("Done, %d records written", total)
}
