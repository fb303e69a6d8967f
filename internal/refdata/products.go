package refdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/invested-dashboard/backend/internal/model"
)

func product(id, symbol, name string, retailPrice float64, releaseDate, category string) model.Product {
	released, err := time.Parse("2006-01-02", releaseDate)
	if err != nil {
		panic(err)
	}
	return model.Product{
		ID:          uuid.MustParse(id),
		Symbol:      symbol,
		Name:        name,
		RetailPrice: retailPrice,
		ReleaseDate: released,
		Category:    category,
	}
}

var productCatalog = []model.Product{
	// Apple
	product("385c429c-52aa-4337-8399-62b5df759b9e", "AAPL", "iPhone 15 Pro", 999, "2023-09-22", "Phone"),
	product("0f50e73f-af33-4942-8119-9e39ba2c01bf", "AAPL", "iPhone 14 Pro", 999, "2022-09-16", "Phone"),
	product("eb205a26-21fe-4fce-8331-60a571c01850", "AAPL", "iPhone 13 Pro", 999, "2021-09-24", "Phone"),
	product("a2f5a0c8-418c-4d09-a4d3-3756abb6af86", "AAPL", "iPhone 12 Pro", 999, "2020-10-23", "Phone"),
	product("0bad8e00-9776-492e-9946-40f4a6db5073", "AAPL", `MacBook Pro 16"`, 2499, "2023-11-07", "Computer"),
	product("7205bc88-fc1c-4240-acd0-73be3820d83b", "AAPL", "MacBook Air M2", 1199, "2022-07-15", "Computer"),
	product("b3640fa6-f265-49f3-8b9a-2c9ab64b9b84", "AAPL", `iPad Pro 12.9"`, 1099, "2022-10-18", "Tablet"),
	product("7072ad4f-6c98-408f-a886-7d5a697563cf", "AAPL", "Apple Watch Series 9", 399, "2023-09-22", "Wearable"),
	product("d46bb37d-e4bd-41f1-b084-e9090a137440", "AAPL", "AirPods Pro 2nd Gen", 249, "2022-09-23", "Audio"),

	// Nike
	product("d29b42b3-ab2b-4cca-befe-29f261dabe8a", "NKE", "Air Jordan 1 Retro High", 170, "2020-04-01", "Shoes"),
	product("8f05a432-0f2d-45c1-8e39-adf7aff7328f", "NKE", "Air Force 1 '07", 90, "2020-01-01", "Shoes"),
	product("8d22d356-bf56-48f6-a814-21917beb052b", "NKE", "Air Max 270", 150, "2021-03-15", "Shoes"),
	product("7d3f5338-cb08-4786-8748-6173cd4b8e4c", "NKE", "Dunk Low", 100, "2021-08-12", "Shoes"),

	// Microsoft
	product("7762660b-9d67-46a1-ae58-0eff156a9c34", "MSFT", "Surface Laptop Studio", 1599, "2021-10-05", "Computer"),
	product("951b04c7-57cd-4575-87ff-ff92b0b45157", "MSFT", "Surface Pro 9", 999, "2022-10-25", "Computer"),
	product("b4bcaf26-e574-4f6a-b4a9-e9c30776ab64", "MSFT", "Xbox Series X", 499, "2020-11-10", "Gaming"),
	product("b20635e2-048b-42fa-9a62-456590d882ff", "MSFT", "Surface Headphones 2", 249, "2020-05-12", "Audio"),

	// Best Buy
	product("2832e277-5662-49c9-9b53-526ece7100d3", "BBY", `Samsung 65" QLED 4K TV`, 1499, "2023-03-01", "TV"),
	product("4d84bcaf-e99b-4fad-bfb8-2d6ec339aefa", "BBY", `LG 55" OLED C3`, 1299, "2023-04-15", "TV"),
	product("b2a3d988-3d0b-4de8-89a1-f2b306c27bb9", "BBY", `Sony 75" Bravia XR`, 2199, "2022-06-01", "TV"),

	// Tesla
	product("9d3bba07-c791-4345-8f5c-6f6a58f12349", "TSLA", "Model 3", 35000, "2020-01-01", "Vehicle"),
	product("35f2b19b-d645-49d5-90ec-d1ec0b7c0cc1", "TSLA", "Model Y", 52990, "2020-03-13", "Vehicle"),
	product("b1b6a95e-be68-48a0-b86e-c4d766c49b1a", "TSLA", "Model S", 74990, "2021-06-10", "Vehicle"),
}

// Products returns the full product catalog. The returned slice is a copy.
func Products() []model.Product {
	products := make([]model.Product, len(productCatalog))
	copy(products, productCatalog)
	return products
}
