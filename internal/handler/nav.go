package handler

import "strings"

// NavItem is one entry of the page header navigation.
type NavItem struct {
	Title string
	Path  string
}

// NavItems are the store sections in display order.
var NavItems = []NavItem{
	{Title: "Cosmetics", Path: "/"},
	{Title: "Bundles", Path: "/bundles"},
	{Title: "Inventory", Path: "/inventory"},
	{Title: "Transactions", Path: "/transactions"},
	{Title: "Users", Path: "/users"},
}

// ActiveTitle resolves the selected section title for a request path. Detail
// pages light up their section; unknown paths fall back to the catalog.
func ActiveTitle(path string) string {
	if path == "/" || strings.HasPrefix(path, "/cosmetics") {
		return "Cosmetics"
	}
	for _, item := range NavItems[1:] {
		if path == item.Path || strings.HasPrefix(path, item.Path+"/") {
			return item.Title
		}
	}
	return "Cosmetics"
}
