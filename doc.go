// Package partsearch provides free-text search over a parts catalog.
//
// A query is normalized, classified as a code or a description lookup,
// auto-corrected and expanded with synonyms, then matched through a
// cascade of increasingly permissive passes. At most five products come
// back, unique by code, best match first.
//
// # Catalog from a file
//
//	client, _ := partsearch.New(ctx, partsearch.WithCatalogFile("data/products.json"))
//	defer client.Close()
//	products, _ := client.Search(ctx, "interutore 10a")
//
// # Catalog from Valkey
//
//	client, _ := partsearch.New(ctx,
//	    partsearch.WithValkey("localhost:6379", "", "partsearch:catalog"),
//	    partsearch.WithCacheTTL(5*time.Minute),
//	)
//	_ = client.Reload(ctx) // pick up a newly pushed catalog
//
// # In-memory catalog
//
//	client, _ := partsearch.New(ctx, partsearch.WithProducts([]partsearch.Product{
//	    {Code: "AB12", Name: "Interruttore 10A", Category: "Interruttori"},
//	}))
package partsearch
