package main

import (
	"repairdesk/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DeviceBrandModel{},
		model.DeviceModelModel{},
		model.ServiceModel{},
		model.PromotionalCardModel{},
		model.CartItemModel{},
		model.BookingModel{},
		model.NotificationModel{},
		model.ProfileModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
