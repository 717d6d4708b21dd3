package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part una parte electrónica del catálogo. MPN (manufacturer part number) es
// único cuando está presente; varias partes pueden no tener MPN. Los ratings
// eléctricos son opcionales y se persisten como NUMERIC. CreatedAt se fija al
// crear y es inmutable.
type Part struct {
	ID          int64
	CategoryID  int64
	FootprintID *int64
	MPN         *string
	Value       *decimal.Decimal
	VoltRating  *decimal.Decimal
	WattRating  *decimal.Decimal
	AmpRating   *decimal.Decimal
	PercentTol  *decimal.Decimal
	Stats       *string
	Comments    *string
	CreatedAt   time.Time
}
