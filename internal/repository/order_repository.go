package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart/internal/db"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// SaveOrder writes the order header and its lines atomically.
func (r *orderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}
	if len(order.Lines) == 0 {
		return fmt.Errorf("order has no lines")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if err := q.InsertOrder(ctx, mapOrderToInsertParams(order)); err != nil {
			return struct{}{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, line := range order.Lines {
			params, err := mapOrderLineToInsertParams(order.ID, i, line)
			if err != nil {
				return struct{}{}, fmt.Errorf("mapOrderLineToInsertParams: %w", err)
			}

			if err := q.InsertOrderLine(ctx, params); err != nil {
				return struct{}{}, fmt.Errorf("q.InsertOrderLine: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("orderID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		row, err := q.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.Order{}, fmt.Errorf("order[%s]: %w", id, domain.ErrNotFound)
			}
			return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
		}

		lines, err := q.GetOrderLines(ctx, id)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetOrderLines: %w", err)
		}

		order, err := mapOrderToDomain(row, lines)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
		}

		return order, nil
	})
}

type selectedOptionRecord struct {
	Group  string       `json:"group"`
	Choice choiceRecord `json:"choice"`
}

func mapOrderToInsertParams(o domain.Order) db.InsertOrderParams {
	return db.InsertOrderParams{
		ID:            o.ID,
		Number:        o.Number,
		SessionID:     o.SessionID,
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		ServiceFee:    o.ServiceFee,
		GrandTotal:    o.GrandTotal,
		Currency:      o.Currency.String(),
		FullName:      o.Delivery.FullName,
		Phone:         o.Delivery.Phone,
		StreetAddress: o.Delivery.StreetAddress,
		City:          o.Delivery.City,
		State:         o.Delivery.State,
		Zip:           o.Delivery.Zip,
		DeliveryTime:  string(o.Delivery.DeliveryTime),
		PaymentMethod: string(o.Delivery.PaymentMethod),
		PlacedAt:      o.PlacedAt,
	}
}

func mapOrderLineToInsertParams(orderID uuid.UUID, lineNo int, line domain.OrderLine) (db.InsertOrderLineParams, error) {
	records := make([]selectedOptionRecord, 0, len(line.SelectedOptions))
	for _, s := range line.SelectedOptions {
		records = append(records, selectedOptionRecord{
			Group:  s.GroupName,
			Choice: choiceRecord{ID: s.Choice.ID, Name: s.Choice.Name, Price: s.Choice.Price},
		})
	}

	selected, err := json.Marshal(records)
	if err != nil {
		return db.InsertOrderLineParams{}, fmt.Errorf("json.Marshal selected options: %w", err)
	}

	return db.InsertOrderLineParams{
		OrderID:         orderID,
		LineNo:          int32(lineNo),
		RestaurantID:    line.RestaurantID,
		MenuItemID:      line.MenuItemID,
		Name:            line.Name,
		Quantity:        int32(line.Quantity),
		UnitPrice:       line.UnitPrice,
		LineTotal:       line.LineTotal,
		SelectedOptions: selected,
	}, nil
}

func mapOrderToDomain(row db.Order, lineRows []db.OrderLine) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	lines, err := mapOrderLineRowsToDomain(lineRows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderLineRowsToDomain: %w", err)
	}

	return domain.Order{
		ID:          row.ID,
		Number:      row.Number,
		SessionID:   row.SessionID,
		Lines:       lines,
		Subtotal:    row.Subtotal,
		DeliveryFee: row.DeliveryFee,
		ServiceFee:  row.ServiceFee,
		GrandTotal:  row.GrandTotal,
		Currency:    parsedCurrency,
		Delivery: domain.DeliveryDetails{
			FullName:      row.FullName,
			Phone:         row.Phone,
			StreetAddress: row.StreetAddress,
			City:          row.City,
			State:         row.State,
			Zip:           row.Zip,
			DeliveryTime:  domain.DeliveryTime(row.DeliveryTime),
			PaymentMethod: domain.PaymentMethod(row.PaymentMethod),
		},
		PlacedAt: row.PlacedAt,
	}, nil
}

func mapOrderLineRowToDomain(row db.OrderLine) (domain.OrderLine, error) {
	var records []selectedOptionRecord
	if err := json.Unmarshal(row.SelectedOptions, &records); err != nil {
		return domain.OrderLine{}, fmt.Errorf("selected options of line[%d] are not valid: %w", row.LineNo, err)
	}

	var selected []domain.SelectedOption
	for _, rec := range records {
		selected = append(selected, domain.SelectedOption{
			GroupName: rec.Group,
			Choice:    domain.Choice{ID: rec.Choice.ID, Name: rec.Choice.Name, Price: rec.Choice.Price},
		})
	}

	return domain.OrderLine{
		RestaurantID:    row.RestaurantID,
		MenuItemID:      row.MenuItemID,
		Name:            row.Name,
		Quantity:        int(row.Quantity),
		UnitPrice:       row.UnitPrice,
		LineTotal:       row.LineTotal,
		SelectedOptions: selected,
	}, nil
}

func mapOrderLineRowsToDomain(rows []db.OrderLine) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine

	for _, row := range rows {
		line, err := mapOrderLineRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderLineRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
