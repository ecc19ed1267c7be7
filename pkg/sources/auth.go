package sources

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"
)

const userAgent = "podscan/1.0"

// authHeaders builds the signed headers the directory requires on every
// request: the raw key, the request time in unix seconds, and a SHA-1
// digest of key+secret+time as the authorization token.
func authHeaders(key, secret string, now time.Time) http.Header {
	epoch := strconv.FormatInt(now.Unix(), 10)
	sum := sha1.Sum([]byte(key + secret + epoch))

	h := http.Header{}
	h.Set("X-Auth-Date", epoch)
	h.Set("X-Auth-Key", key)
	h.Set("Authorization", hex.EncodeToString(sum[:]))
	h.Set("User-Agent", userAgent)
	return h
}
