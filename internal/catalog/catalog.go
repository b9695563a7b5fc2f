package catalog

// HabitTemplate is an immutable catalog definition of a sustainable action.
type HabitTemplate struct {
	ID          int
	Name        string
	Icon        string
	ImpactKg    float64 // CO2-equivalent saved per completion
	Description string
	BasePoints  int
}

var templates = []HabitTemplate{
	{ID: 1, Name: "Use reusable water bottle", Icon: "💧", ImpactKg: 0.5, Description: "Avoid single-use plastic bottles", BasePoints: 10},
	{ID: 2, Name: "Walk or bike instead of driving", Icon: "🚲", ImpactKg: 2.3, Description: "For trips under 2km", BasePoints: 25},
	{ID: 3, Name: "Turn off lights when leaving room", Icon: "💡", ImpactKg: 0.3, Description: "Save electricity", BasePoints: 5},
	{ID: 4, Name: "Take shorter showers", Icon: "🚿", ImpactKg: 1.2, Description: "Reduce to 5 minutes", BasePoints: 15},
	{ID: 5, Name: "Use public transport", Icon: "🚌", ImpactKg: 1.8, Description: "Instead of private vehicle", BasePoints: 20},
	{ID: 6, Name: "Bring reusable bags shopping", Icon: "🛍️", ImpactKg: 0.4, Description: "Avoid plastic bags", BasePoints: 10},
	{ID: 7, Name: "Eat one plant-based meal", Icon: "🥗", ImpactKg: 3.5, Description: "Reduce meat consumption", BasePoints: 30},
	{ID: 8, Name: "Unplug electronics when not in use", Icon: "🔌", ImpactKg: 0.8, Description: "Stop phantom energy use", BasePoints: 12},
}

// List returns the catalog in display order. The slice is a copy.
func List() []HabitTemplate {
	out := make([]HabitTemplate, len(templates))
	copy(out, templates)
	return out
}

// Find looks up a template by id.
func Find(id int) (HabitTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return HabitTemplate{}, false
}

// MaxTemplateID is the highest id the catalog uses. Custom habit ids start well above it.
func MaxTemplateID() int {
	max := 0
	for _, t := range templates {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
