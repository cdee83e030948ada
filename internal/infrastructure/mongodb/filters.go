package mongodb

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// containsInsensitive subcadena literal sin distinguir mayúsculas.
func containsInsensitive(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

func decimalRange(min, max *decimal.Decimal) (bson.M, error) {
	r := bson.M{}
	if min != nil {
		v, err := toDecimal128(*min)
		if err != nil {
			return nil, err
		}
		r["$gte"] = v
	}
	if max != nil {
		v, err := toDecimal128(*max)
		if err != nil {
			return nil, err
		}
		r["$lte"] = v
	}
	return r, nil
}

func timeRange(min, max *time.Time) bson.M {
	r := bson.M{}
	if min != nil {
		r["$gte"] = *min
	}
	if max != nil {
		r["$lte"] = *max
	}
	return r
}

// productQuery traduce ProductFilter a un filtro de MongoDB.
func productQuery(f repository.ProductFilter) (bson.M, error) {
	q := bson.M{}
	if f.Search != "" {
		q["name"] = containsInsensitive(f.Search)
	}
	price, err := decimalRange(f.MinPrice, f.MaxPrice)
	if err != nil {
		return nil, err
	}
	if len(price) > 0 {
		q["price"] = price
	}
	if created := timeRange(f.MinDate, f.MaxDate); len(created) > 0 {
		q["createdAt"] = created
	}
	return q, nil
}

// orderQuery traduce OrderFilter. Search aplica sobre la foto del nombre de cada línea.
func orderQuery(f repository.OrderFilter) (bson.M, error) {
	q := bson.M{}
	if f.Search != "" {
		q["orderItems.productName"] = containsInsensitive(f.Search)
	}
	total, err := decimalRange(f.MinTotalPrice, f.MaxTotalPrice)
	if err != nil {
		return nil, err
	}
	if len(total) > 0 {
		q["totalPrice"] = total
	}
	if created := timeRange(f.MinDate, f.MaxDate); len(created) > 0 {
		q["createdAt"] = created
	}
	return q, nil
}

// userQuery usa el índice de texto sobre fullName y email.
func userQuery(f repository.UserFilter) bson.M {
	if f.Search == "" {
		return bson.M{}
	}
	return bson.M{"$text": bson.M{"$search": f.Search}}
}

// pageOptions orden más reciente primero con skip/limit de la página.
func pageOptions(page repository.Page) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))
}
