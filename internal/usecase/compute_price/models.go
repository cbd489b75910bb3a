package compute_price

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// Request модель запроса на расчет стоимости проживания
type Request struct {
	HousingID int64     // ID жилья
	Start     time.Time // Дата заезда
	End       time.Time // Дата выезда
}

// Response модель ответа с итоговой стоимостью
type Response struct {
	HousingID int64           // ID жилья
	Start     time.Time       // Дата заезда
	End       time.Time       // Дата выезда
	Nights    int             // Оплачиваемые ночи по всем сезонам
	Total     decimal.Decimal // Итоговая стоимость
	Seasons   []SeasonPrice   // Разбивка по сезонам в хронологическом порядке
}

// SeasonPrice часть проживания, приходящаяся на один сезон
type SeasonPrice struct {
	SeasonID   int64
	SeasonName string
	BasePrice  *decimal.Decimal     // nil, если цена сезона не задана
	Nights     int                  // Ночи в сезоне
	Dates      []domain.BookingDate // Поддиапазоны проживания внутри сезона
	Subtotal   decimal.Decimal      // Nights * BasePrice
}
