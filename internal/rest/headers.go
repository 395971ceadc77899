package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rpattn/hrapi/internal/domain"
)

const (
	applicationName  = "hrapiApp"
	alertHeader      = "X-" + applicationName + "-alert"
	paramsHeader     = "X-" + applicationName + "-params"
	totalCountHeader = "X-Total-Count"
)

// setAlert emits the message key of a successful mutation, e.g.
// "hrapiApp.region.created", with the affected id as its parameter.
func setAlert(w http.ResponseWriter, entityName, action string, id int64) {
	w.Header().Set(alertHeader, fmt.Sprintf("%s.%s.%s", applicationName, entityName, action))
	w.Header().Set(paramsHeader, url.QueryEscape(strconv.FormatInt(id, 10)))
}

// setPagination writes X-Total-Count and an RFC 5988 Link header with next,
// prev, last and first relations. Links keep the request's other parameters.
func setPagination(w http.ResponseWriter, r *http.Request, page domain.Page, total int64) {
	w.Header().Set(totalCountHeader, strconv.FormatInt(total, 10))

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	lastPage := max(totalPages-1, 0)

	var links []string
	if page.Number+1 < totalPages {
		links = append(links, pageLink(r, page.Number+1, page.Size, "next"))
	}
	if page.Number > 0 {
		links = append(links, pageLink(r, page.Number-1, page.Size, "prev"))
	}
	links = append(links,
		pageLink(r, lastPage, page.Size, "last"),
		pageLink(r, 0, page.Size, "first"),
	)
	w.Header().Set("Link", strings.Join(links, ","))
}

func pageLink(r *http.Request, number, size int, rel string) string {
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(number))
	q.Set("size", strconv.Itoa(size))
	u := url.URL{Path: r.URL.Path, RawQuery: q.Encode()}
	return fmt.Sprintf(`<%s>; rel="%s"`, u.String(), rel)
}
