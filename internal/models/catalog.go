package models

// Каталог продуктов - иммутабельный, внедряется в сервис вместо глобальной таблицы
type Catalog struct {
	points         map[string]int64
	subscriptionID string
	firstMonth     int64
	monthly        int64
}

func NewCatalog(points map[string]int64, subscriptionID string, firstMonth int64, monthly int64) Catalog {
	cp := make(map[string]int64, len(points))
	for k, v := range points {
		cp[k] = v
	}
	return Catalog{cp, subscriptionID, firstMonth, monthly}
}

// продукты App Store
func DefaultCatalog() Catalog {
	return NewCatalog(map[string]int64{
		"com.kpopvote.points.330":  300,
		"com.kpopvote.points.550":  550,
		"com.kpopvote.points.1100": 1200,
		"com.kpopvote.points.3300": 3800,
		"com.kpopvote.points.5500": 6500,
		// promo версии - x2 баллов
		"com.kpopvote.points.330.promo":  600,
		"com.kpopvote.points.550.promo":  1100,
		"com.kpopvote.points.1100.promo": 2400,
		"com.kpopvote.points.3300.promo": 7600,
		"com.kpopvote.points.5500.promo": 13000,
	}, "com.kpopvote.premium.monthly", 1200, 600)
}

func (c Catalog) Points(productID string) (int64, bool) {
	p, ok := c.points[productID]
	return p, ok
}

func (c Catalog) SubscriptionID() string {
	return c.subscriptionID
}

// баллы за подписку: первый месяц или продление
func (c Catalog) SubscriptionPoints(firstMonth bool) int64 {
	if firstMonth {
		return c.firstMonth
	}
	return c.monthly
}
