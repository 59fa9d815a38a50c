package domain

// Destination is a searchable place with its Thai display label.
type Destination struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// destinations is the curated province list offered by the search form.
var destinations = []Destination{
	{ID: "bangkok", Label: "กรุงเทพมหานคร"},
	{ID: "chiang-mai", Label: "เชียงใหม่"},
	{ID: "phuket", Label: "ภูเก็ต"},
	{ID: "krabi", Label: "กระบี่"},
	{ID: "samui", Label: "เกาะสมุย"},
	{ID: "pattaya", Label: "พัทยา (ชลบุรี)"},
	{ID: "hat-yai", Label: "หาดใหญ่ (สงขลา)"},
	{ID: "udon-thani", Label: "อุดรธานี"},
	{ID: "khon-kaen", Label: "ขอนแก่น"},
	{ID: "nakhon-ratchasima", Label: "นครราชสีมา"},
	{ID: "surat-thani", Label: "สุราษฎร์ธานี"},
	{ID: "trang", Label: "ตรัง"},
	{ID: "surin", Label: "สุรินทร์"},
	{ID: "ubon-ratchathani", Label: "อุบลราชธานี"},
	{ID: "nakhon-sawan", Label: "นครสวรรค์"},
	{ID: "lampang", Label: "ลำปาง"},
	{ID: "mae-hong-son", Label: "แม่ฮ่องสอน"},
	{ID: "nan", Label: "น่าน"},
	{ID: "phitsanulok", Label: "พิษณุโลก"},
	{ID: "sukhothai", Label: "สุโขทัย"},
}

// Destinations returns the curated destination list in display order.
// The caller owns the returned slice.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// DestinationLabel returns the display label for a destination identifier.
// Unknown identifiers pass through unchanged.
func DestinationLabel(id string) string {
	key := NormalizeDestination(id)
	for _, d := range destinations {
		if d.ID == key {
			return d.Label
		}
	}
	return id
}
