package pipeline

import (
	"fmt"

	"bpi-report/internal"
)

const (
	promptMessage    = "Enter the currency code"
	notFoundMessage  = "Sorry, that currency was not found"
	exceptionMessage = "Exception while fetching data from API"
)

func currentRateMessage(q internal.PriceQuote) string {
	return fmt.Sprintf("The current Bitcoin rate %s, in the requested currency is : %s", q.Rate.String(), q.Currency)
}

func unsupportedMessage(code internal.CurrencyCode) string {
	return fmt.Sprintf("Sorry, your requested currency %s is not supported or is invalid", code)
}

func lowestMessage(days int, ext internal.Extremes) string {
	return fmt.Sprintf("The lowest Bitcoin rate in the last %d days, in the requested currency is: %s", days, ext.Lowest.String())
}

func highestMessage(days int, ext internal.Extremes) string {
	return fmt.Sprintf("The highest Bitcoin rate in the last %d days, in the requested currency is: %s", days, ext.Highest.String())
}

func noDataMessage(days int) string {
	return fmt.Sprintf("Sorry, no Bitcoin rates were returned for the last %d days", days)
}
