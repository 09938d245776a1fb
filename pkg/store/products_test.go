// Copyright 2025 ShopHub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shophub/storefront/pkg/models"
	"github.com/shophub/storefront/pkg/store"
)

var _ = Describe("Products", func() {
	var (
		ctx context.Context
		s   *store.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, _ = newInitializedStore(ctx)
	})

	AfterEach(func() {
		Expect(s.Close()).To(Succeed())
	})

	Context("when the store is freshly initialized", func() {
		It("should contain exactly the five seed products in id order", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(5))

			skus := make([]string, 0, len(products))
			for _, p := range products {
				Expect(p.SKU).NotTo(BeNil())
				skus = append(skus, *p.SKU)
			}

			Expect(skus).To(Equal([]string{
				"SONY-WH-001",
				"APPLE-WATCH-001",
				"BREV-COFF-001",
				"NIKE-RUN-001",
				"DELL-GAM-001",
			}))
		})

		It("should not reseed on a second Initialize", func() {
			Expect(s.Initialize(ctx)).To(Succeed())

			count, err := s.GetProductCount(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(5)))
		})
	})

	Context("when creating products", func() {
		It("should round-trip every field except timestamps", func() {
			original := models.Product{
				Name:          "Mechanical Keyboard",
				Price:         159.99,
				OriginalPrice: float64Ptr(189.99),
				Image:         strPtr("https://example.com/keyboard.jpg"),
				Rating:        4.2,
				ReviewCount:   42,
				IsNew:         true,
				Discount:      int64Ptr(16),
				Category:      "Electronics",
				Brand:         "Keychron",
				Description:   strPtr("Hot-swappable mechanical keyboard"),
				Stock:         30,
				SKU:           strPtr("KEY-MECH-001"),
			}

			id, err := s.CreateProduct(ctx, original)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 5))

			got, err := s.GetProduct(ctx, id)
			Expect(err).NotTo(HaveOccurred())

			Expect(got.Name).To(Equal(original.Name))
			Expect(got.Price).To(Equal(original.Price))
			Expect(got.OriginalPrice).To(HaveValue(Equal(*original.OriginalPrice)))
			Expect(got.Image).To(HaveValue(Equal(*original.Image)))
			Expect(got.Rating).To(Equal(original.Rating))
			Expect(got.ReviewCount).To(Equal(original.ReviewCount))
			Expect(got.IsNew).To(Equal(original.IsNew))
			Expect(got.Discount).To(HaveValue(Equal(*original.Discount)))
			Expect(got.Category).To(Equal(original.Category))
			Expect(got.Brand).To(Equal(original.Brand))
			Expect(got.Description).To(HaveValue(Equal(*original.Description)))
			Expect(got.Stock).To(Equal(original.Stock))
			Expect(got.SKU).To(HaveValue(Equal(*original.SKU)))
			Expect(got.CreatedAt.IsZero()).To(BeFalse())
			Expect(got.UpdatedAt.IsZero()).To(BeFalse())
		})

		It("should default rating, reviewCount and stock to zero and optionals to NULL", func() {
			id, err := s.CreateProduct(ctx, models.Product{
				Name:     "X",
				Price:    10,
				Category: "Books",
				Brand:    "Other",
			})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.GetProduct(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Stock).To(Equal(int64(0)))
			Expect(got.Rating).To(Equal(float64(0)))
			Expect(got.ReviewCount).To(Equal(int64(0)))
			Expect(got.IsNew).To(BeFalse())
			Expect(got.OriginalPrice).To(BeNil())
			Expect(got.Discount).To(BeNil())
			Expect(got.SKU).To(BeNil())
		})

		It("should reject a duplicate sku through the unique constraint", func() {
			_, err := s.CreateProduct(ctx, models.Product{
				Name:     "Clone",
				Price:    1,
				Category: "Electronics",
				Brand:    "Sony",
				SKU:      strPtr("SONY-WH-001"),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("UNIQUE"))
		})
	})

	Context("when filtering products", func() {
		It("should match category exactly and case-sensitively", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{Category: "Electronics"})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(3))

			for _, p := range products {
				Expect(p.Category).To(Equal("Electronics"))
			}

			lower, err := s.GetProducts(ctx, store.ProductFilters{Category: "electronics"})
			Expect(err).NotTo(HaveOccurred())
			Expect(lower).To(BeEmpty())
		})

		It("should apply inclusive price bounds", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{MinPrice: 79.99, MaxPrice: 149.99})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).NotTo(BeEmpty())

			for _, p := range products {
				Expect(p.Price).To(BeNumerically(">=", 79.99))
				Expect(p.Price).To(BeNumerically("<=", 149.99))
			}
		})

		It("should apply the rating filter as an inclusive minimum", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{Rating: 4.6})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(3))

			for _, p := range products {
				Expect(p.Rating).To(BeNumerically(">=", 4.6))
			}
		})

		It("should search name, description, brand and category case-insensitively", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{Query: "coffee"})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].Name).To(Equal("Premium Coffee Maker"))

			byBrand, err := s.GetProducts(ctx, store.ProductFilters{Query: "nike"})
			Expect(err).NotTo(HaveOccurred())
			Expect(byBrand).To(HaveLen(1))
			Expect(byBrand[0].Brand).To(Equal("Nike"))
		})

		It("should compose filters conjunctively", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{
				Category: "Electronics",
				MaxPrice: 200,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(2))
		})
	})

	Context("when sorting products", func() {
		It("should return non-decreasing prices for price-low", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{SortBy: store.SortPriceLow})
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < len(products); i++ {
				Expect(products[i].Price).To(BeNumerically(">=", products[i-1].Price))
			}
		})

		It("should return non-increasing prices for price-high", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{SortBy: store.SortPriceHigh})
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < len(products); i++ {
				Expect(products[i].Price).To(BeNumerically("<=", products[i-1].Price))
			}
		})

		It("should sort by name ascending for name", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{SortBy: store.SortName})
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < len(products); i++ {
				Expect(products[i].Name >= products[i-1].Name).To(BeTrue())
			}
		})

		It("should fall back to id ascending for unknown sort keys", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{SortBy: "featured"})
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < len(products); i++ {
				Expect(products[i].ID).To(BeNumerically(">", products[i-1].ID))
			}
		})
	})

	Context("when paginating products", func() {
		It("should return one page while CountProducts reports the pre-limit total", func() {
			page, err := s.GetProducts(ctx, store.ProductFilters{Page: 1, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(2))

			total, err := s.CountProducts(ctx, store.ProductFilters{Page: 1, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(5)))
		})

		It("should return the remainder on the last page", func() {
			page, err := s.GetProducts(ctx, store.ProductFilters{Page: 3, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(1))
		})

		It("should not paginate when only one of page and limit is set", func() {
			products, err := s.GetProducts(ctx, store.ProductFilters{Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(5))
		})
	})

	Context("when updating products", func() {
		It("should overwrite all mutable columns", func() {
			p, err := s.GetProduct(ctx, 1)
			Expect(err).NotTo(HaveOccurred())

			p.Name = "Renamed Headphones"
			p.Price = 99.99
			p.Stock = 7
			p.OriginalPrice = nil

			Expect(s.UpdateProduct(ctx, 1, p)).To(Succeed())

			got, err := s.GetProduct(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Renamed Headphones"))
			Expect(got.Price).To(Equal(99.99))
			Expect(got.Stock).To(Equal(int64(7)))
			Expect(got.OriginalPrice).To(BeNil())
		})

		It("should report ErrNotFound for an unknown id", func() {
			err := s.UpdateProduct(ctx, 9999, models.Product{
				Name: "Ghost", Price: 1, Category: "None", Brand: "None",
			})
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Context("when deleting products", func() {
		It("should remove exactly one row and make lookups fail afterwards", func() {
			Expect(s.DeleteProduct(ctx, 4)).To(Succeed())

			_, err := s.GetProduct(ctx, 4)
			Expect(err).To(MatchError(store.ErrNotFound))

			count, err := s.GetProductCount(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(4)))
		})

		It("should report ErrNotFound for an unknown id", func() {
			Expect(s.DeleteProduct(ctx, 9999)).To(MatchError(store.ErrNotFound))
		})
	})
})

func strPtr(v string) *string       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
