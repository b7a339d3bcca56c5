package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrMissingField = errors.New("required field is empty")
	ErrInvalidURL   = errors.New("invalid url")
)

type fieldCheck struct {
	path  string
	value string
}

// Validate reports every blank required field and malformed link. All problems are
// returned together so a broken content file can be fixed in one pass.
func (s *Site) Validate() error {
	var errs []error

	require := func(checks ...fieldCheck) {
		for _, c := range checks {
			if strings.TrimSpace(c.value) == "" {
				errs = append(errs, fmt.Errorf("%s: %w", c.path, ErrMissingField))
			}
		}
	}

	require(
		fieldCheck{"title", s.Title},
		fieldCheck{"lang", s.Lang},
		fieldCheck{"docs_url", s.DocsURL},
		fieldCheck{"blog_url", s.BlogURL},
		fieldCheck{"home.title", s.Home.Title},
		fieldCheck{"links.title", s.Links.Title},
		fieldCheck{"profile.name", s.Profile.Name},
		fieldCheck{"profile.title", s.Profile.Title},
		fieldCheck{"profile.affiliation", s.Profile.Affiliation},
	)

	for i, interest := range s.Profile.Interests {
		require(fieldCheck{fmt.Sprintf("profile.interests[%d]", i), interest})
	}
	if s.Profile.GitHub != "" {
		if err := checkAbsoluteURL(s.Profile.GitHub); err != nil {
			errs = append(errs, fmt.Errorf("profile.github: %w", err))
		}
	}

	for i, e := range s.Education {
		p := fmt.Sprintf("education[%d]", i)
		require(
			fieldCheck{p + ".degree", e.Degree},
			fieldCheck{p + ".institution", e.Institution},
			fieldCheck{p + ".period", e.Period},
		)
		for j, sup := range e.Supervisors {
			require(fieldCheck{fmt.Sprintf("%s.supervisors[%d]", p, j), sup})
		}
	}

	for i, e := range s.Experience {
		p := fmt.Sprintf("experience[%d]", i)
		require(
			fieldCheck{p + ".title", e.Title},
			fieldCheck{p + ".organization", e.Organization},
			fieldCheck{p + ".period", e.Period},
			fieldCheck{p + ".description", e.Description},
		)
	}

	for i, e := range s.Statistics {
		p := fmt.Sprintf("statistics[%d]", i)
		require(
			fieldCheck{p + ".label", e.Label},
			fieldCheck{p + ".value", e.Value},
			fieldCheck{p + ".icon", e.Icon},
		)
	}

	for i, e := range s.Categories {
		p := fmt.Sprintf("categories[%d]", i)
		require(
			fieldCheck{p + ".name", e.Name},
			fieldCheck{p + ".icon", e.Icon},
			fieldCheck{p + ".path", e.Path},
			fieldCheck{p + ".description", e.Description},
		)
	}

	for i, e := range s.Features {
		p := fmt.Sprintf("features[%d]", i)
		require(
			fieldCheck{p + ".title", e.Title},
			fieldCheck{p + ".description", e.Description},
		)
	}

	for i, e := range s.FriendLinks {
		p := fmt.Sprintf("friend_links[%d]", i)
		require(
			fieldCheck{p + ".title", e.Title},
			fieldCheck{p + ".description", e.Description},
			fieldCheck{p + ".website", e.Website},
		)
		if e.Website != "" {
			if err := checkAbsoluteURL(e.Website); err != nil {
				errs = append(errs, fmt.Errorf("%s.website: %w", p, err))
			}
		}
		if e.Avatar != "" {
			if err := checkAbsoluteURL(e.Avatar); err != nil {
				errs = append(errs, fmt.Errorf("%s.avatar: %w", p, err))
			}
		}
	}

	return errors.Join(errs...)
}

func checkAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q must use http or https", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return nil
}

// IsExternal reports whether target leaves the site and should open in a new tab.
// Scheme comparison ignores case, matching how url.Parse treats it in Validate.
func IsExternal(target string) bool {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "http") || strings.EqualFold(u.Scheme, "https")
}
