package http

import (
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/dish"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/generated/servers"
)

func toSellerStatus(a seller.Availability) servers.SellerStatus {
	status := servers.SellerStatus{
		SellerId:        a.SellerID().Google(),
		IsOnline:        a.IsOnline(),
		DashboardStatus: servers.DashboardStatus(a.DashboardStatus()),
		CanAcceptOrders: a.CanAcceptOrders(),
	}
	if at := a.LastActiveAt(); !at.IsZero() {
		status.LastActiveAt = &at
	}
	return status
}

func toPriceBreakdown(p order.PriceBreakdown) servers.PriceBreakdown {
	return servers.PriceBreakdown{
		ItemPrice:   p.ItemPrice(),
		DeliveryFee: p.DeliveryFee(),
		PlatformFee: p.PlatformFee(),
		Gst:         p.GST(),
		TotalAmount: p.Total(),
	}
}

func toStatusHistory(history []order.StatusChange) []servers.StatusChange {
	out := make([]servers.StatusChange, len(history))
	for i, change := range history {
		out[i] = servers.StatusChange{
			Status: servers.OrderStatus(change.Status),
			Actor:  string(change.Actor),
			At:     change.At,
		}
	}
	return out
}

func toOrderItem(name string, price int64, restaurant, image string) servers.OrderItem {
	item := servers.OrderItem{Name: name, Price: price, Restaurant: restaurant}
	if image != "" {
		item.Image = &image
	}
	return item
}

func orderFromDomain(o *order.Order) servers.Order {
	item := o.Item()
	return servers.Order{
		Id:              o.ID().Google(),
		OrderId:         o.OrderID(),
		CustomerId:      o.CustomerID().Google(),
		SellerId:        o.SellerID().Google(),
		DishId:          o.DishID().Google(),
		Item:            toOrderItem(item.Name, item.Price, item.Restaurant, item.Image),
		DeliveryAddress: o.DeliveryAddress(),
		Pricing:         toPriceBreakdown(o.Pricing()),
		Status:          servers.OrderStatus(o.Status()),
		PaymentStatus:   servers.PaymentStatus(o.PaymentStatus()),
		StatusHistory:   toStatusHistory(o.History()),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderFromView(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:              v.ID.Google(),
		OrderId:         v.OrderID,
		CustomerId:      v.CustomerID.Google(),
		SellerId:        v.SellerID.Google(),
		DishId:          v.DishID.Google(),
		Item:            toOrderItem(v.ItemName, v.ItemPrice, v.Restaurant, v.ItemImage),
		DeliveryAddress: v.DeliveryAddress,
		Pricing: servers.PriceBreakdown{
			ItemPrice:   v.ItemPrice,
			DeliveryFee: v.DeliveryFee,
			PlatformFee: v.PlatformFee,
			Gst:         v.GST,
			TotalAmount: v.TotalAmount,
		},
		Status:        servers.OrderStatus(v.Status),
		PaymentStatus: servers.PaymentStatus(v.PaymentStatus),
		StatusHistory: toStatusHistory(v.History),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func ordersFromViews(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, len(views))
	for i, v := range views {
		out[i] = orderFromView(v)
	}
	return out
}

func toDish(d *dish.Dish) servers.Dish {
	out := servers.Dish{
		Id:             d.ID().Google(),
		SellerId:       d.SellerID().Google(),
		Name:           d.Name(),
		Price:          d.Price(),
		RestaurantName: d.RestaurantName(),
		IsAvailable:    d.IsAvailable(),
	}
	if image := d.ImageURL(); image != "" {
		out.ImageUrl = &image
	}
	return out
}

func metadataPtr(m map[string]any) *map[string]interface{} {
	if len(m) == 0 {
		return nil
	}
	return &m
}

func toNotification(n *notification.Notification) servers.Notification {
	return servers.Notification{
		Id:          n.ID().Google(),
		UserId:      n.UserID().Google(),
		Type:        servers.NotificationType(n.Type()),
		Title:       n.Title(),
		Message:     n.Message(),
		Metadata:    metadataPtr(n.Metadata()),
		Priority:    servers.NotificationPriority(n.Priority()),
		ActionRoute: n.ActionRoute(),
		IsRead:      n.IsRead(),
		ReadAt:      n.ReadAt(),
		CreatedAt:   n.CreatedAt(),
		ExpiresAt:   n.ExpiresAt(),
	}
}

func notificationFromView(v queries.NotificationView) servers.Notification {
	return servers.Notification{
		Id:          v.ID.Google(),
		UserId:      v.UserID.Google(),
		Type:        servers.NotificationType(v.Type),
		Title:       v.Title,
		Message:     v.Message,
		Metadata:    metadataPtr(v.Metadata),
		Priority:    servers.NotificationPriority(v.Priority),
		ActionRoute: v.ActionRoute,
		IsRead:      v.IsRead,
		ReadAt:      v.ReadAt,
		CreatedAt:   v.CreatedAt,
		ExpiresAt:   v.ExpiresAt,
	}
}

func toAddress(a *address.Address) servers.Address {
	out := servers.Address{
		Id:        a.ID().Google(),
		Label:     a.Label(),
		Line:      a.Line(),
		City:      a.City(),
		IsDefault: a.IsDefault(),
		CreatedAt: a.CreatedAt(),
	}
	if code := a.PostalCode(); code != "" {
		out.PostalCode = &code
	}
	return out
}

func addressFromView(v queries.AddressView) servers.Address {
	out := servers.Address{
		Id:        v.ID.Google(),
		Label:     v.Label,
		Line:      v.Line,
		City:      v.City,
		IsDefault: v.IsDefault,
		CreatedAt: v.CreatedAt,
	}
	if v.PostalCode != "" {
		code := v.PostalCode
		out.PostalCode = &code
	}
	return out
}
