package dynamic

// Sample data backing the person, address, and commerce generators. Lists are
// deliberately small; variety comes from combination, not list size.

var firstNames = []string{
	"James", "Mary", "Sofia", "Liam", "Aisha", "Noah", "Elena", "Mateo",
	"Yuki", "Omar", "Ingrid", "Ravi", "Clara", "Dmitri", "Amara", "Felix",
}

var lastNames = []string{
	"Smith", "Garcia", "Kim", "Okafor", "Ivanov", "Tanaka", "Müller",
	"Rossi", "Andersson", "Silva", "Novak", "Haddad", "O'Brien", "Costa",
}

var namePrefixes = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Prof."}

var jobTitles = []string{
	"Software Engineer", "Product Manager", "Data Analyst", "Designer",
	"Accountant", "Operations Lead", "Sales Representative", "Researcher",
}

var words = []string{
	"harbor", "signal", "meadow", "copper", "lantern", "drift", "quartz",
	"ember", "willow", "summit", "cascade", "orchid", "basalt", "prairie",
}

var colors = []string{
	"red", "orange", "yellow", "green", "blue", "indigo", "violet",
	"teal", "maroon", "olive", "navy", "coral",
}

var abbreviations = []string{
	"HTTP", "API", "SQL", "JSON", "XML", "TCP", "SSL", "RAM", "CPU", "SDK",
}

var cities = []string{
	"Springfield", "Riverton", "Oakdale", "Fairview", "Brookhaven",
	"Lakewood", "Milton", "Ashford", "Clayton", "Greenville",
}

var streetNames = []string{
	"Maple", "Oak", "Cedar", "Elm", "Willow", "Birch", "Chestnut",
	"Juniper", "Magnolia", "Sycamore",
}

var streetSuffixes = []string{"Street", "Avenue", "Lane", "Road", "Boulevard", "Court"}

// countries pairs a display name with its ISO 3166-1 alpha-2 code.
var countries = []struct {
	name string
	code string
}{
	{"United States", "US"},
	{"Germany", "DE"},
	{"Japan", "JP"},
	{"Brazil", "BR"},
	{"India", "IN"},
	{"Nigeria", "NG"},
	{"France", "FR"},
	{"Canada", "CA"},
	{"Australia", "AU"},
	{"Mexico", "MX"},
}

var products = []string{
	"Chair", "Table", "Keyboard", "Mouse", "Gloves", "Soap", "Towels",
	"Bike", "Hat", "Shoes", "Car", "Computer", "Ball", "Shirt",
}

var productAdjectives = []string{
	"Small", "Ergonomic", "Rustic", "Intelligent", "Gorgeous",
	"Incredible", "Fantastic", "Practical", "Sleek", "Handmade",
}

var companySuffixes = []string{"Inc", "LLC", "Group", "Labs", "and Sons"}

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY", "INR", "BRL",
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148",
}

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var months = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

var tlds = []string{"com", "net", "org", "io", "dev"}
