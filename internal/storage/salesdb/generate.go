package salesdb

import (
	"fmt"
	"math/rand"
	"time"
)

type product struct {
	name  string
	price float64
}

type location struct {
	city, state, zip string
}

var demoProducts = []product{
	{"USB-C Charging Cable", 11.95},
	{"Lightning Charging Cable", 14.95},
	{"AAA Batteries (4-pack)", 2.99},
	{"AA Batteries (4-pack)", 3.84},
	{"Wired Headphones", 11.99},
	{"Apple Airpods Headphones", 150},
	{"Bose SoundSport Headphones", 99.99},
	{"27in FHD Monitor", 149.99},
	{"iPhone", 700},
	{"27in 4K Gaming Monitor", 389.99},
	{"34in Ultrawide Monitor", 379.99},
	{"Google Phone", 600},
	{"Flatscreen TV", 300},
	{"Macbook Pro Laptop", 1700},
	{"ThinkPad Laptop", 999.99},
	{"20in Monitor", 109.99},
	{"Vareebadd Phone", 400},
	{"LG Washing Machine", 600},
	{"LG Dryer", 600},
}

var demoLocations = []location{
	{"San Francisco", "CA", "94016"},
	{"Los Angeles", "CA", "90001"},
	{"New York City", "NY", "10001"},
	{"Boston", "MA", "02215"},
	{"Atlanta", "GA", "30301"},
	{"Dallas", "TX", "75001"},
	{"Seattle", "WA", "98101"},
	{"Portland", "OR", "97035"},
	{"Portland", "ME", "04101"},
	{"Austin", "TX", "73301"},
}

var demoStreets = []string{"Main St", "Park St", "Oak St", "Pine St", "Maple St", "Cedar St", "Elm St", "Lake St"}

// monthWeight scales order volume per month; December is the busiest.
var monthWeight = [12]float64{0.55, 0.65, 0.85, 1.0, 0.95, 0.85, 0.85, 0.7, 0.65, 1.2, 1.05, 1.6}

// GenerateOrders builds a deterministic year of orders. perDay is the order
// count of an average day; each month scales it by monthWeight.
func GenerateOrders(year int, seed int64, perDay int) []Order {
	rng := rand.New(rand.NewSource(seed))
	var orders []Order
	var nextID int64 = 100000

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Year() == year; day = day.AddDate(0, 0, 1) {
		n := int(float64(perDay)*monthWeight[day.Month()-1]*(0.9+0.2*rng.Float64()) + 0.5)
		for i := 0; i < n; i++ {
			nextID++
			loc := demoLocations[rng.Intn(len(demoLocations))]
			address := fmt.Sprintf("%d %s, %s, %s %s",
				1+rng.Intn(999), demoStreets[rng.Intn(len(demoStreets))], loc.city, loc.state, loc.zip)
			at := day.Add(time.Duration(rng.Intn(24*60)) * time.Minute)

			lines := 1
			if rng.Float64() < 0.05 {
				lines = 2
			}
			for l := 0; l < lines; l++ {
				p := pickProduct(rng)
				qty := 1
				if p.price < 20 && rng.Float64() < 0.3 {
					qty += rng.Intn(3)
				}
				orders = append(orders, Order{
					OrderID:         nextID,
					Product:         p.name,
					QuantityOrdered: qty,
					PriceEach:       p.price,
					OrderDate:       at.Format("2006-01-02 15:04:05"),
					PurchaseAddress: address,
					City:            loc.city,
					State:           loc.state,
				})
			}
		}
	}
	return orders
}

// productWeights gives cheap accessories far more picks than laptops.
var productWeights, productWeightTotal = inversePriceWeights(demoProducts)

func inversePriceWeights(products []product) ([]float64, float64) {
	weights := make([]float64, len(products))
	total := 0.0
	for i, p := range products {
		weights[i] = 1 / (p.price + 50)
		total += weights[i]
	}
	return weights, total
}

func pickProduct(rng *rand.Rand) product {
	r := rng.Float64() * productWeightTotal
	for i, w := range productWeights {
		if r < w {
			return demoProducts[i]
		}
		r -= w
	}
	return demoProducts[len(demoProducts)-1]
}
