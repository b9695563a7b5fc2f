package catalog

var tips = []string{
	"Replace one car trip per week with walking or cycling to save 2.3kg CO₂ weekly!",
	"Using a reusable water bottle can prevent 156 plastic bottles from entering landfills annually.",
	"LED bulbs use 75% less energy than incandescent bulbs and last 25 times longer.",
	"Taking 5-minute showers instead of 10-minute ones saves 25 gallons of water daily.",
	"Eating one less meat meal per week saves the equivalent of driving 348 miles in CO₂ emissions.",
	"Unplugging electronics saves $100+ annually and reduces phantom energy consumption.",
	"Using reusable shopping bags can prevent 170 plastic bags from being used annually.",
	"Air-drying clothes instead of using a dryer saves 2.3kg CO₂ per load.",
	"Using both sides of paper reduces paper consumption by 50%.",
	"Keeping your car tires properly inflated improves fuel efficiency by up to 3%.",
}

// Tips returns the built-in eco tips. The slice is a copy.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
