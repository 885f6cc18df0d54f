package infra

import (
	"context"
	"log"

	"github.com/lib/pq"
	"tassili/internal/models/db_models"
	"tassili/internal/repositories"
)

// SeedCatalog inserts the launch catalog when the trips table is empty.
// Agency packages are normalized into the same Trip shape up front.
func SeedCatalog(tripRepo repositories.TripRepository) {
	ctx := context.Background()

	count, err := tripRepo.CountTrips(ctx)
	if err != nil {
		log.Printf("Error counting trips for seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if err := tripRepo.InsertBatch(ctx, launchCatalog()); err != nil {
		log.Printf("Error seeding trip catalog: %v", err)
		return
	}
	log.Println("Trip catalog seeded")
}

func launchCatalog() []db_models.Trip {
	return []db_models.Trip{
		{
			Title:        "Djanet Desert Magic",
			DisplayPrice: "89,000 DA",
			PriceMinor:   89000,
			Duration:     "7 days • All inclusive camp",
			Location:     "Djanet, Algeria",
			Agency:       "Sahara Travels",
			Rating:       4.8,
			Category:     db_models.CategoryDesert,
			Description:  "Experience the magic of the Sahara with guided tours, camel rides, traditional Berber camps, and spectacular sunsets.",
			Images:       pq.StringArray{"trips/djanet_1.jpg"},
		},
		{
			Title:        "Bejaia Coastal Escape",
			DisplayPrice: "62,000 DA",
			PriceMinor:   62000,
			Duration:     "5 days • Resort included",
			Location:     "Bejaia, Algeria",
			Agency:       "Coastal Tours",
			Rating:       4.9,
			Category:     db_models.CategoryBeach,
			Description:  "Relax on pristine Mediterranean beaches with luxury resort accommodation and water activities.",
			Images:       pq.StringArray{"trips/bejaia_1.jpg"},
		},
		{
			Title:        "Algiers City Break",
			DisplayPrice: "45,000 DA",
			PriceMinor:   45000,
			Duration:     "3 days • Hotel & tours",
			Location:     "Algiers, Algeria",
			Agency:       "Urban Travels",
			Rating:       4.6,
			Category:     db_models.CategoryCity,
			Description:  "Discover the white city: the Casbah, Notre Dame d'Afrique and the Mediterranean corniche with local guides.",
			Images:       pq.StringArray{"trips/algiers_1.jpg"},
		},
		{
			Title:           "Sahara Sunset Camping",
			DisplayPrice:    "55,000 DA",
			PriceMinor:      55000,
			Duration:        "4 days • Guided tours",
			Location:        "Hassilabied, Algeria",
			Agency:          "Sahara Travels",
			Rating:          4.7,
			Category:        db_models.CategoryDesert,
			Description:     "Camp under the stars in the dunes with traditional dinners and sunrise treks.",
			Images:          pq.StringArray{"trips/hassilabied_1.jpg"},
			IsAgencyPackage: true,
		},
		{
			Title:           "Kabylie Mountain Escape",
			DisplayPrice:    "70,000 DA",
			PriceMinor:      70000,
			Duration:        "6 days • All inclusive",
			Location:        "Tizi-Ouzou, Algeria",
			Agency:          "Mountain Adventures",
			Rating:          4.8,
			Category:        db_models.CategoryMountain,
			Description:     "Hike through Kabylie villages, cedar forests and mountain passes with local hosts.",
			Images:          pq.StringArray{"trips/kabylie_1.jpg"},
			IsAgencyPackage: true,
		},
		{
			Title:           "Oran Coastal Journey",
			DisplayPrice:    "48,000 DA",
			PriceMinor:      48000,
			Duration:        "4 days • Hotel & meals",
			Location:        "Oran, Algeria",
			Agency:          "Coastal Tours",
			Rating:          4.5,
			Category:        db_models.CategoryCity,
			Description:     "Explore Oran's seafront, Santa Cruz fort and its legendary music scene.",
			Images:          pq.StringArray{"trips/oran_1.jpg"},
			IsAgencyPackage: true,
		},
		{
			Title:           "Constantine City of Bridges",
			DisplayPrice:    "52,000 DA",
			PriceMinor:      52000,
			Duration:        "3 days • Guided tours",
			Location:        "Constantine, Algeria",
			Agency:          "Historic Tours",
			Rating:          4.7,
			Category:        db_models.CategoryCultural,
			Description:     "Walk the suspended bridges and Ottoman palaces of Algeria's ancient capital.",
			Images:          pq.StringArray{"trips/constantine_1.jpg"},
			IsAgencyPackage: true,
		},
	}
}
