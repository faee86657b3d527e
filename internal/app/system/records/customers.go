package records

import (
	"net/url"
	"strings"

	"github.com/dalemusser/fieldhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/fieldhub/internal/app/system/idgen"
	"github.com/dalemusser/fieldhub/internal/domain/models"
)

// CustomerInput is the add/edit customer form.
type CustomerInput struct {
	SiteName     string
	Address      string
	Postcode     string
	ContactName  string
	ContactPhone string
}

// ParseCustomerForm reads and cleans the form values. Call Validate before use.
func ParseCustomerForm(form url.Values) CustomerInput {
	return CustomerInput{
		SiteName:     htmlsanitize.StripTags(form.Get("siteName")),
		Address:      htmlsanitize.StripTags(form.Get("address")),
		Postcode:     htmlsanitize.StripTags(form.Get("postcode")),
		ContactName:  htmlsanitize.StripTags(form.Get("contactName")),
		ContactPhone: htmlsanitize.StripTags(form.Get("contactPhone")),
	}
}

// Validate requires site name, address and contact name to be non-blank.
func (in CustomerInput) Validate() error {
	switch {
	case strings.TrimSpace(in.SiteName) == "":
		return required("siteName", "Site name")
	case strings.TrimSpace(in.Address) == "":
		return required("address", "Address")
	case strings.TrimSpace(in.ContactName) == "":
		return required("contactName", "Contact name")
	}
	return nil
}

func (in CustomerInput) apply(c models.Customer) models.Customer {
	c.SiteName = strings.TrimSpace(in.SiteName)
	c.Address = strings.TrimSpace(in.Address)
	c.Postcode = strings.TrimSpace(in.Postcode)
	c.ContactName = strings.TrimSpace(in.ContactName)
	c.ContactPhone = strings.TrimSpace(in.ContactPhone)
	return c
}

// CreateCustomer validates in and appends a new customer.
func CreateCustomer(customers []models.Customer, in CustomerInput, gen idgen.Generator) ([]models.Customer, models.Customer, error) {
	if err := in.Validate(); err != nil {
		return customers, models.Customer{}, err
	}
	c := in.apply(models.Customer{ID: gen.NewID(customerPrefix)})
	out := make([]models.Customer, 0, len(customers)+1)
	out = append(out, customers...)
	return append(out, c), c, nil
}

// UpdateCustomer replaces every mutable field of the customer with id.
// An unknown id returns ErrCustomerNotFound and the original collection.
func UpdateCustomer(customers []models.Customer, id string, in CustomerInput) ([]models.Customer, models.Customer, error) {
	idx := -1
	for i, c := range customers {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return customers, models.Customer{}, ErrCustomerNotFound
	}
	if err := in.Validate(); err != nil {
		return customers, models.Customer{}, err
	}
	out := make([]models.Customer, len(customers))
	copy(out, customers)
	out[idx] = in.apply(out[idx])
	return out, out[idx], nil
}

// FindCustomer resolves id against customers.
func FindCustomer(customers []models.Customer, id string) (models.Customer, bool) {
	for _, c := range customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}
