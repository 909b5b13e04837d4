package product

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// DecodeSeed parses a JSON array of products, as embedded in the db package.
func DecodeSeed(data []byte) ([]Product, error) {
	d := jx.DecodeBytes(data)

	var products []Product
	if err := d.Arr(func(d *jx.Decoder) error {
		var p Product
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "id":
				v, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "id")
				}
				p.ID = v
			case "name":
				v, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "name")
				}
				p.Name = v
			case "price":
				n, err := d.Num()
				if err != nil {
					return errors.Wrap(err, "price")
				}
				price, err := decimal.NewFromString(n.String())
				if err != nil {
					return errors.Wrap(err, "parse price")
				}
				if price.IsNegative() {
					return errors.Errorf("negative price %s", price)
				}
				p.Price = price
			default:
				return d.Skip()
			}
			return nil
		}); err != nil {
			return err
		}
		if p.ID == "" {
			return errors.New("product without id")
		}
		products = append(products, p)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode products seed")
	}

	return products, nil
}
