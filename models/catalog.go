package models

// Category is one of the fixed browse categories.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Categories = []Category{
	{ID: "tops", Name: "Tops"},
	{ID: "bottoms", Name: "Bottoms"},
	{ID: "dresses", Name: "Dresses"},
	{ID: "outerwear", Name: "Outerwear"},
	{ID: "shoes", Name: "Shoes"},
	{ID: "accessories", Name: "Accessories"},
}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL", "28", "30", "32", "34", "36", "38", "40", "42"}
