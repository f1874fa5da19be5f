package entity

// Inventory counts collected resources.
type Inventory struct {
	Coal    int
	Ore     int
	Diamond int
}

// SpendCoal removes n coal if available and reports whether it did.
func (i *Inventory) SpendCoal(n int) bool {
	if i.Coal < n {
		return false
	}
	i.Coal -= n
	return true
}

// Total returns the number of resources held.
func (i Inventory) Total() int {
	return i.Coal + i.Ore + i.Diamond
}
