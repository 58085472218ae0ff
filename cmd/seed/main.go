// seed inserts demo identities for local testing against the React client.
// Idempotent: identities whose document id already exists are skipped.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"biometric-core-api/internal/config"
	"biometric-core-api/internal/db"
	"biometric-core-api/internal/identity/domain"
	identityrepo "biometric-core-api/internal/identity/repository"
)

type seedIdentity struct {
	fullName   string
	documentID string
	role       string
	axis       int
}

var seedIdentities = []seedIdentity{
	{fullName: "Ana Torres", documentID: "DEMO-0001", role: "User", axis: 0},
	{fullName: "Luis Rojas", documentID: "DEMO-0002", role: "User", axis: 1},
	{fullName: "Marta Vega", documentID: "DEMO-0003", role: "Admin", axis: 2},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; set it in the environment or a .env file")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	repo := identityrepo.NewPostgresRepository(conn)

	for _, s := range seedIdentities {
		existing, err := repo.GetByDocumentID(ctx, s.documentID)
		if err != nil {
			log.Fatalf("seed: lookup %s: %v", s.documentID, err)
		}
		if existing != nil {
			fmt.Printf("skip %s (already enrolled)\n", s.documentID)
			continue
		}
		ident := &domain.Identity{
			ID:         uuid.New().String(),
			FullName:   s.fullName,
			DocumentID: s.documentID,
			Role:       s.role,
			Descriptor: unitDescriptor(s.axis),
			CreatedAt:  time.Now().UTC(),
		}
		if err := repo.Create(ctx, ident); err != nil {
			log.Fatalf("seed: insert %s: %v", s.documentID, err)
		}
		fmt.Printf("enrolled %s as %s\n", s.documentID, ident.ID)
	}
}

// unitDescriptor builds a synthetic descriptor: a unit vector along one axis.
// Distinct axes are at Euclidean distance sqrt(2) from each other, so seeded
// identities never match one another at any sane threshold.
func unitDescriptor(axis int) domain.Descriptor {
	d := make(domain.Descriptor, domain.DescriptorLength)
	d[axis%domain.DescriptorLength] = 1
	return d
}
