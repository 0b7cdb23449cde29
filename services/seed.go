package services

import "urban-threads/models"

// defaultCatalog is the built-in product set used when no catalog has been
// persisted yet, or when the persisted one cannot be parsed.
func defaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Midnight Snapback",
			Price:       24.99,
			Category:    models.CategoryCaps,
			ImageURL:    "https://picsum.photos/seed/cap1/600/600",
			Description: "Matte black snapback with an embroidered monogram. Adjustable fit.",
			IsFeatured:  true,
		},
		{
			ID:          "2",
			Name:        "Concrete Grey Dad Hat",
			Price:       19.99,
			Category:    models.CategoryCaps,
			ImageURL:    "https://picsum.photos/seed/cap2/600/600",
			Description: "Washed cotton dad hat in concrete grey. Curved brim, brass clasp.",
			IsFeatured:  false,
		},
		{
			ID:          "3",
			Name:        "Neon Skyline Trucker",
			Price:       22.50,
			Category:    models.CategoryCaps,
			ImageURL:    "https://picsum.photos/seed/cap3/600/600",
			Description: "Mesh-back trucker cap with a neon skyline print across the front panel.",
			IsFeatured:  false,
		},
		{
			ID:          "4",
			Name:        "Stealth Beanie Cap",
			Price:       17.99,
			Category:    models.CategoryCaps,
			ImageURL:    "https://picsum.photos/seed/cap4/600/600",
			Description: "Low-profile five panel in stealth black. No logos, no noise.",
			IsFeatured:  false,
		},
		{
			ID:          "5",
			Name:        "Graffiti Oversized Tee",
			Price:       29.99,
			Category:    models.CategoryTshirts,
			ImageURL:    "https://picsum.photos/seed/tee1/600/600",
			Description: "Heavyweight oversized tee with a hand-drawn graffiti back print.",
			IsFeatured:  true,
		},
		{
			ID:          "6",
			Name:        "Core Logo Tee - White",
			Price:       19.99,
			Category:    models.CategoryTshirts,
			ImageURL:    "https://picsum.photos/seed/tee2/600/600",
			Description: "Classic fit white tee with the Urban Threads core logo at the chest.",
			IsFeatured:  true,
		},
		{
			ID:          "7",
			Name:        "Acid Wash Boxy Tee",
			Price:       27.50,
			Category:    models.CategoryTshirts,
			ImageURL:    "https://picsum.photos/seed/tee3/600/600",
			Description: "Boxy cut tee in acid-washed charcoal. Each wash pattern is unique.",
			IsFeatured:  false,
		},
		{
			ID:          "8",
			Name:        "Night Rider Long Sleeve",
			Price:       32.00,
			Category:    models.CategoryTshirts,
			ImageURL:    "https://picsum.photos/seed/tee4/600/600",
			Description: "Long sleeve with reflective sleeve prints that light up after dark.",
			IsFeatured:  false,
		},
	}
}
