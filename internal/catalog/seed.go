package catalog

import (
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/shopspring/decimal"
)

const imageBase = "https://images.unsplash.com/"

func SeedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: "1", Name: "Burger Palace", Cuisine: "American", Rating: 4.5,
			Image:        imageBase + "photo-1571091718767-18b5b1457add?q=80&w=500&auto=format&fit=crop",
			DeliveryTime: "15-25 min", DeliveryFee: price("2.99"), Featured: true,
		},
		{
			ID: "2", Name: "Pizza Heaven", Cuisine: "Italian", Rating: 4.7,
			Image:        imageBase + "photo-1513104890138-7c749659a591?q=80&w=500&auto=format&fit=crop",
			DeliveryTime: "20-30 min", DeliveryFee: price("1.99"), Featured: true,
		},
		{
			ID: "3", Name: "Sushi Express", Cuisine: "Japanese", Rating: 4.8,
			Image:        imageBase + "photo-1579871494447-9811cf80d66c?q=80&w=500&auto=format&fit=crop",
			DeliveryTime: "25-35 min", DeliveryFee: price("3.99"), Featured: true,
		},
		{
			ID: "4", Name: "Taco Town", Cuisine: "Mexican", Rating: 4.2,
			Image:        imageBase + "photo-1565299585323-38d6b0865b47?q=80&w=500&auto=format&fit=crop",
			DeliveryTime: "15-25 min", DeliveryFee: price("2.49"),
		},
		{
			ID: "5", Name: "Pasta Paradise", Cuisine: "Italian", Rating: 4.6,
			Image:        imageBase + "photo-1563379926898-05f4575a45d8?q=80&w=500&auto=format&fit=crop",
			DeliveryTime: "20-30 min", DeliveryFee: price("2.99"),
		},
		{
			ID: "6", Name: "Curry House", Cuisine: "Indian", Rating: 4.4,
			Image:        imageBase + "photo-1631292784640-2b24be784d5d?q=80&w=500&auto=format&fit=crop",
			DeliveryTime: "25-35 min", DeliveryFee: price("3.49"),
		},
	}
}

func SeedMenuItems() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID: "b1", RestaurantID: "1", Name: "Classic Cheeseburger",
			Description: "Beef patty with cheese, lettuce, tomato, and special sauce",
			Image:       imageBase + "photo-1568901346375-23c9450c58cd?q=80&w=500&auto=format&fit=crop",
			Price:       price("9.99"), Category: "Burgers", Popular: true,
			Options: []domain.OptionGroup{
				group("Size", choice("s1", "Regular", "0"), choice("s2", "Double Patty", "3.00")),
				group("Sides", choice("side1", "French Fries", "2.99"), choice("side2", "Onion Rings", "3.99")),
			},
		},
		{
			ID: "b2", RestaurantID: "1", Name: "BBQ Bacon Burger",
			Description: "Beef patty with bacon, cheddar, BBQ sauce, and onion rings",
			Image:       imageBase + "photo-1594212699903-ec8a3eca50f5?q=80&w=500&auto=format&fit=crop",
			Price:       price("12.99"), Category: "Burgers", Popular: true,
		},
		{
			ID: "b3", RestaurantID: "1", Name: "Veggie Burger",
			Description: "Plant-based patty with lettuce, tomato, and vegan mayo",
			Image:       imageBase + "photo-1551782450-17144efb9c50?q=80&w=500&auto=format&fit=crop",
			Price:       price("10.99"), Category: "Burgers",
		},
		{
			ID: "p1", RestaurantID: "2", Name: "Margherita Pizza",
			Description: "Classic pizza with tomato sauce, mozzarella, and basil",
			Image:       imageBase + "photo-1604068549290-dea0e4a305ca?q=80&w=500&auto=format&fit=crop",
			Price:       price("12.99"), Category: "Pizzas", Popular: true,
			Options: []domain.OptionGroup{
				group("Size", choice("ps1", `Medium (12")`, "0"), choice("ps2", `Large (16")`, "4.00")),
				group("Crust",
					choice("pc1", "Regular", "0"),
					choice("pc2", "Thin Crust", "0"),
					choice("pc3", "Stuffed Crust", "2.00"),
				),
			},
		},
		{
			ID: "p2", RestaurantID: "2", Name: "Pepperoni Pizza",
			Description: "Classic pizza with tomato sauce, mozzarella, and pepperoni",
			Image:       imageBase + "photo-1534308983496-4fabb1a015ee?q=80&w=500&auto=format&fit=crop",
			Price:       price("14.99"), Category: "Pizzas", Popular: true,
		},
		{
			ID: "p3", RestaurantID: "2", Name: "Supreme Pizza",
			Description: "Loaded with pepperoni, sausage, peppers, onions, olives, and mushrooms",
			Image:       imageBase + "photo-1590947132387-155cc02f3212?q=80&w=500&auto=format&fit=crop",
			Price:       price("16.99"), Category: "Pizzas",
		},
		{
			ID: "s1", RestaurantID: "3", Name: "California Roll",
			Description: "Crab, avocado, and cucumber wrapped in seaweed and rice",
			Image:       imageBase + "photo-1579871494447-9811cf80d66c?q=80&w=500&auto=format&fit=crop",
			Price:       price("8.99"), Category: "Rolls", Popular: true,
			Options: []domain.OptionGroup{
				group("Size", choice("ss1", "6 pieces", "0"), choice("ss2", "12 pieces", "7.99")),
				group("Sides", choice("sa1", "Miso Soup", "2.49"), choice("sa2", "Edamame", "3.49")),
			},
		},
		{
			ID: "s2", RestaurantID: "3", Name: "Spicy Tuna Roll",
			Description: "Fresh tuna with spicy mayo, wrapped in seaweed and rice",
			Image:       imageBase + "photo-1617196034183-421b4917c92d?q=80&w=500&auto=format&fit=crop",
			Price:       price("10.99"), Category: "Rolls", Popular: true,
		},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func group(name string, choices ...domain.Choice) domain.OptionGroup {
	return domain.OptionGroup{Name: name, Choices: choices}
}

func choice(id, name, delta string) domain.Choice {
	return domain.Choice{ID: id, Name: name, Price: price(delta)}
}
