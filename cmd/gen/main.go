// Command gen generates typed gorm query helpers for the persistence models.
package main

import (
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ShopModel{},
		model.ShopFollowerModel{},
		model.ShopLikeModel{},
		model.ProductModel{},
		model.ProductLikeModel{},
		model.CartModel{},
		model.CartLineModel{},
		model.OrderModel{},
		model.OrderLineModel{},
		model.NotificationModel{},
		model.UserDeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
