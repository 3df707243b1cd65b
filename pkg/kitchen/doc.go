/*
Package kitchen builds hamburgers from a category tag.

A Menu is a lookup table from Kind to constructor. Callers ask for a kind and
get back something they can Prepare, without knowing the concrete type:

	menu := kitchen.DefaultMenu()
	if err := menu.Order(kitchen.Chicken, reporter); err != nil {
		return err
	}
*/
package kitchen
