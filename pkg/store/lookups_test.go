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

var _ = Describe("Lookups", func() {
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

	It("should list the distinct categories of the catalog in order", func() {
		categories, err := s.GetCategories(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(categories).To(Equal([]string{"Electronics", "Home & Garden", "Sports"}))
	})

	It("should list the distinct brands of the catalog in order", func() {
		brands, err := s.GetBrands(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(brands).To(Equal([]string{"Apple", "Breville", "Dell", "Nike", "Sony"}))
	})

	It("should pick up categories introduced by new products", func() {
		_, err := s.CreateProduct(ctx, models.Product{
			Name:     "Desk Lamp",
			Price:    25,
			Category: "Office",
			Brand:    "Ikea",
		})
		Expect(err).NotTo(HaveOccurred())

		categories, err := s.GetCategories(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(categories).To(ContainElement("Office"))
	})
})
