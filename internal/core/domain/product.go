package domain

type Product struct {
	Title       string  `yaml:"title"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Rating      float64 `yaml:"rating"` // 0..5, not enforced
}
