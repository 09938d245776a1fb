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

var _ = Describe("Users", func() {
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
		It("should contain the admin seed user", func() {
			u, err := s.GetUserByEmail(ctx, "admin@shophub.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Username).To(Equal("admin"))
			Expect(u.Role).To(Equal(models.RoleAdmin))
			Expect(u.FirstName).To(HaveValue(Equal("Admin")))
		})

		It("should contain the customer seed user", func() {
			u, err := s.GetUserByEmail(ctx, "customer@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Username).To(Equal("customer"))
			Expect(u.Role).To(Equal(models.RoleCustomer))
		})
	})

	Context("when looking up users", func() {
		It("should report ErrNotFound for an unknown email", func() {
			_, err := s.GetUserByEmail(ctx, "nobody@example.com")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Context("when creating users", func() {
		It("should default the role to customer", func() {
			id, err := s.CreateUser(ctx, models.User{
				Username: "jane",
				Email:    "jane@example.com",
				Password: "secret",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 2))

			u, err := s.GetUserByEmail(ctx, "jane@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(id))
			Expect(u.Role).To(Equal(models.RoleCustomer))
			Expect(u.FirstName).To(BeNil())
			Expect(u.LastName).To(BeNil())
		})

		It("should reject a duplicate email", func() {
			_, err := s.CreateUser(ctx, models.User{
				Username: "admin2",
				Email:    "admin@shophub.com",
				Password: "x",
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("UNIQUE"))
		})

		It("should reject a duplicate username", func() {
			_, err := s.CreateUser(ctx, models.User{
				Username: "admin",
				Email:    "other@shophub.com",
				Password: "x",
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("UNIQUE"))
		})
	})
})
