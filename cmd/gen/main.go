package main

import (
	"localharvest/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.UserDeviceModel{},
		model.ProductModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.ShipmentModel{},
		model.CounterModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
