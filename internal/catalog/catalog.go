// Package catalog holds the fixed product data. Records are read-only;
// pricing consumers only ever read UnitPrice from them.
package catalog

import (
	"github.com/samber/lo"

	"github.com/zakispin/spinshop/internal/model"
)

var kidsSizes = []string{"6Y", "8Y", "10Y", "12Y", "14Y"}

var collections = []model.Collection{
	{Slug: "tshirts", Name: "Football T-Shirts", Image: "/images/collections/tshirts.png"},
	{Slug: "caps", Name: "Caps & Hats", Image: "/images/collections/caps.png"},
	{Slug: "accessories", Name: "Football Accessories", Image: "/images/collections/accessories.png"},
}

var products = []model.Product{
	{
		ID: "MA-1", Name: "Morocco Home Kids Jersey 24/25",
		UnitPrice: 249, OriginalPrice: 349,
		Image: "/images/products/ma-1.png", Sizes: kidsSizes, Collection: "tshirts",
	},
	{
		ID: "MA-2", Name: "Morocco Away Kids Jersey 24/25",
		UnitPrice: 279, OriginalPrice: 399,
		Image: "/images/products/ma-2.png", Sizes: kidsSizes, Collection: "tshirts",
	},
	{
		ID: "MA-3", Name: "Morocco Kids Training Top",
		UnitPrice: 199, OriginalPrice: 279,
		Image: "/images/products/ma-3.png", Sizes: kidsSizes, Collection: "tshirts",
	},
	{
		ID: "MA-5", Name: "Morocco Kids Full Kit (Jersey + Shorts)",
		UnitPrice: 349, OriginalPrice: 499,
		Image: "/images/products/ma-5.png", Sizes: kidsSizes, Collection: "tshirts",
	},
	{
		ID: "MA-8", Name: "Morocco Kids Lifestyle T-shirt",
		UnitPrice: 149, OriginalPrice: 219,
		Image: "/images/products/ma-8.png", Sizes: kidsSizes, Collection: "tshirts",
	},
	{
		ID: "MA-9", Name: "Morocco Kids Shorts",
		UnitPrice: 129, OriginalPrice: 189,
		Image: "/images/products/ma-9.png", Sizes: kidsSizes, Collection: "tshirts",
	},
	{
		ID: "MA-11", Name: "Morocco Supporter Cap",
		UnitPrice: 99, OriginalPrice: 149,
		Image: "/images/products/ma-11.png", Collection: "caps",
	},
	{
		ID: "MA-12", Name: "Atlas Lions Bucket Hat",
		UnitPrice: 119, OriginalPrice: 169,
		Image: "/images/products/ma-12.png", Collection: "caps",
	},
	{
		ID: "MA-21", Name: "Morocco Supporter Scarf",
		UnitPrice: 79, OriginalPrice: 119,
		Image: "/images/products/ma-21.png", Collection: "accessories",
	},
	{
		ID: "MA-22", Name: "Morocco Mini Ball",
		UnitPrice: 89, OriginalPrice: 129,
		Image: "/images/products/ma-22.png", Collection: "accessories",
	},
	{
		ID: "MA-23", Name: "Morocco Kids Warm-up Jacket",
		UnitPrice: 289, OriginalPrice: 389,
		Image: "/images/products/ma-23.png", Sizes: kidsSizes, Collection: "accessories",
	},
}

// Collections lists all collections in display order.
func Collections() []model.Collection {
	return collections
}

// CollectionBySlug returns a collection by slug.
func CollectionBySlug(slug string) (model.Collection, bool) {
	return lo.Find(collections, func(c model.Collection) bool { return c.Slug == slug })
}

// ByCollection returns the products of a collection. found is false for
// an unknown slug.
func ByCollection(slug string) ([]model.Product, bool) {
	if _, ok := CollectionBySlug(slug); !ok {
		return nil, false
	}
	return lo.Filter(products, func(p model.Product, _ int) bool { return p.Collection == slug }), true
}

// ProductByID returns a product by id.
func ProductByID(id string) (model.Product, bool) {
	return lo.Find(products, func(p model.Product) bool { return p.ID == id })
}
