package httpapi

import (
	"time"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/service"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Amounts are rendered as fixed two-decimal strings so clients never see
// binary floating point.

type restaurantView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"delivery_time"`
	DeliveryFee  string  `json:"delivery_fee"`
	Featured     bool    `json:"featured"`
}

type menuItemView struct {
	ID           string            `json:"id"`
	RestaurantID string            `json:"restaurant_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Image        string            `json:"image"`
	Category     string            `json:"category"`
	Price        string            `json:"price"`
	Popular      bool              `json:"popular"`
	Options      []optionGroupView `json:"options,omitempty"`
}

type optionGroupView struct {
	Name    string       `json:"name"`
	Choices []choiceView `json:"choices"`
}

type choiceView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type selectedOptionView struct {
	Group    string `json:"group"`
	ChoiceID string `json:"choice_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}

type lineView struct {
	ItemID          string               `json:"item_id"`
	RestaurantID    string               `json:"restaurant_id"`
	Name            string               `json:"name"`
	Image           string               `json:"image,omitempty"`
	Quantity        int                  `json:"quantity"`
	UnitPrice       string               `json:"unit_price"`
	LineTotal       string               `json:"line_total"`
	SelectedOptions []selectedOptionView `json:"selected_options,omitempty"`
}

type groupView struct {
	RestaurantID   string     `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	Lines          []lineView `json:"lines"`
}

type cartView struct {
	SessionID      string      `json:"session_id"`
	Groups         []groupView `json:"groups"`
	ItemCount      int         `json:"item_count"`
	Subtotal       string      `json:"subtotal"`
	DeliveryFee    string      `json:"delivery_fee"`
	ServiceFee     string      `json:"service_fee"`
	GrandTotal     string      `json:"grand_total"`
	FormattedTotal string      `json:"formatted_total"`
}

type deliveryView struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	DeliveryTime  string `json:"delivery_time"`
	PaymentMethod string `json:"payment_method"`
}

type orderLineView struct {
	ItemID          string               `json:"item_id"`
	RestaurantID    string               `json:"restaurant_id"`
	Name            string               `json:"name"`
	Quantity        int                  `json:"quantity"`
	UnitPrice       string               `json:"unit_price"`
	LineTotal       string               `json:"line_total"`
	SelectedOptions []selectedOptionView `json:"selected_options,omitempty"`
}

type orderView struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	Lines          []orderLineView `json:"lines"`
	Subtotal       string          `json:"subtotal"`
	DeliveryFee    string          `json:"delivery_fee"`
	ServiceFee     string          `json:"service_fee"`
	GrandTotal     string          `json:"grand_total"`
	Currency       string          `json:"currency"`
	FormattedTotal string          `json:"formatted_total"`
	Delivery       deliveryView    `json:"delivery"`
	PlacedAt       *time.Time      `json:"placed_at,omitempty"`
}

type checkoutView struct {
	ID     string    `json:"id"`
	Status string    `json:"status"`
	Order  orderView `json:"order"`
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toRestaurantView(r domain.Restaurant) restaurantView {
	return restaurantView{
		ID:           r.ID,
		Name:         r.Name,
		Image:        r.Image,
		Cuisine:      r.Cuisine,
		Rating:       r.Rating,
		DeliveryTime: r.DeliveryTime,
		DeliveryFee:  amount(r.DeliveryFee),
		Featured:     r.Featured,
	}
}

func toRestaurantViews(rs []domain.Restaurant) []restaurantView {
	out := make([]restaurantView, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRestaurantView(r))
	}
	return out
}

func toMenuItemView(item domain.MenuItem) menuItemView {
	v := menuItemView{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Description:  item.Description,
		Image:        item.Image,
		Category:     item.Category,
		Price:        amount(item.Price),
		Popular:      item.Popular,
	}

	for _, g := range item.Options {
		gv := optionGroupView{Name: g.Name, Choices: make([]choiceView, 0, len(g.Choices))}
		for _, ch := range g.Choices {
			gv.Choices = append(gv.Choices, choiceView{ID: ch.ID, Name: ch.Name, Price: amount(ch.Price)})
		}
		v.Options = append(v.Options, gv)
	}

	return v
}

func toMenuItemViews(items []domain.MenuItem) []menuItemView {
	out := make([]menuItemView, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemView(item))
	}
	return out
}

func toSelectedOptionViews(selected []domain.SelectedOption) []selectedOptionView {
	if len(selected) == 0 {
		return nil
	}

	out := make([]selectedOptionView, 0, len(selected))
	for _, so := range selected {
		out = append(out, selectedOptionView{
			Group:    so.GroupName,
			ChoiceID: so.Choice.ID,
			Name:     so.Choice.Name,
			Price:    amount(so.Choice.Price),
		})
	}
	return out
}

func toLineView(e domain.CartEntry) lineView {
	return lineView{
		ItemID:          e.MenuItem.ID,
		RestaurantID:    e.MenuItem.RestaurantID,
		Name:            e.MenuItem.Name,
		Image:           e.MenuItem.Image,
		Quantity:        e.Quantity,
		UnitPrice:       amount(e.UnitPrice()),
		LineTotal:       amount(e.LineTotal()),
		SelectedOptions: toSelectedOptionViews(e.SelectedOptions),
	}
}

// toCartView renders the summary; names maps restaurant ids to display names.
func toCartView(sessionID string, s domain.OrderSummary, unit currency.Unit, names map[string]string) cartView {
	v := cartView{
		SessionID:      sessionID,
		Groups:         make([]groupView, 0, len(s.Groups)),
		ItemCount:      s.ItemCount,
		Subtotal:       amount(s.Subtotal),
		DeliveryFee:    amount(s.DeliveryFee),
		ServiceFee:     amount(s.ServiceFee),
		GrandTotal:     amount(s.GrandTotal),
		FormattedTotal: domain.NewMoney(s.GrandTotal, unit).Format(),
	}

	for _, g := range s.Groups {
		gv := groupView{
			RestaurantID:   g.RestaurantID,
			RestaurantName: names[g.RestaurantID],
			Lines:          make([]lineView, 0, len(g.Entries)),
		}
		for _, e := range g.Entries {
			gv.Lines = append(gv.Lines, toLineView(e))
		}
		v.Groups = append(v.Groups, gv)
	}

	return v
}

func toOrderView(o domain.Order) orderView {
	v := orderView{
		ID:             o.ID.String(),
		Number:         o.Number,
		Lines:          make([]orderLineView, 0, len(o.Lines)),
		Subtotal:       amount(o.Subtotal),
		DeliveryFee:    amount(o.DeliveryFee),
		ServiceFee:     amount(o.ServiceFee),
		GrandTotal:     amount(o.GrandTotal),
		Currency:       o.Currency.String(),
		FormattedTotal: o.Total().Format(),
		Delivery: deliveryView{
			FullName:      o.Delivery.FullName,
			Phone:         o.Delivery.Phone,
			StreetAddress: o.Delivery.StreetAddress,
			City:          o.Delivery.City,
			State:         o.Delivery.State,
			Zip:           o.Delivery.Zip,
			DeliveryTime:  string(o.Delivery.DeliveryTime),
			PaymentMethod: string(o.Delivery.PaymentMethod),
		},
	}

	if !o.PlacedAt.IsZero() {
		placedAt := o.PlacedAt
		v.PlacedAt = &placedAt
	}

	for _, l := range o.Lines {
		v.Lines = append(v.Lines, orderLineView{
			ItemID:          l.MenuItemID,
			RestaurantID:    l.RestaurantID,
			Name:            l.Name,
			Quantity:        l.Quantity,
			UnitPrice:       amount(l.UnitPrice),
			LineTotal:       amount(l.LineTotal),
			SelectedOptions: toSelectedOptionViews(l.SelectedOptions),
		})
	}

	return v
}

func toCheckoutView(c service.Checkout) checkoutView {
	return checkoutView{
		ID:     c.ID.String(),
		Status: string(c.Status),
		Order:  toOrderView(c.Order),
	}
}
