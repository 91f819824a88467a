package adminlist

import (
	"strings"

	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

// List is the admin allow-list with its immutable bootstrap address.
// The bootstrap address is always a member, even when the stored record
// is absent or was written without it.
type List struct {
	bootstrap string
	emails    []string
}

func New(bootstrap string, stored models.EmailList) List {
	l := List{bootstrap: normalize(bootstrap)}

	l.emails = append(l.emails, l.bootstrap)
	for _, e := range stored {
		e = normalize(e)
		if e == "" || l.Contains(e) {
			continue
		}
		l.emails = append(l.emails, e)
	}

	return l
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Contains is the access-control predicate: isAdmin(email).
func (l List) Contains(email string) bool {
	email = normalize(email)
	for _, e := range l.emails {
		if e == email {
			return true
		}
	}
	return false
}

func (l List) Emails() []string {
	out := make([]string, len(l.emails))
	copy(out, l.emails)
	return out
}

// Add returns the list with the address appended. Duplicate or empty
// addresses are rejected before any store call.
func (l List) Add(email string) (List, error) {
	email = normalize(email)
	if email == "" {
		return l, httperr.ErrBusiness("invalid_email")
	}
	if l.Contains(email) {
		return l, httperr.ErrBusiness("duplicate_admin_email")
	}

	out := List{bootstrap: l.bootstrap}
	out.emails = append(append(out.emails, l.emails...), email)
	return out, nil
}

// Remove returns the list without the address. Removing the bootstrap
// address is rejected and leaves the list unchanged.
func (l List) Remove(email string) (List, error) {
	email = normalize(email)
	if email == l.bootstrap {
		return l, httperr.ErrBusiness("bootstrap_admin_immutable")
	}
	if !l.Contains(email) {
		return l, httperr.ErrBusiness("admin_email_not_found")
	}

	out := List{bootstrap: l.bootstrap}
	for _, e := range l.emails {
		if e != email {
			out.emails = append(out.emails, e)
		}
	}
	return out, nil
}
