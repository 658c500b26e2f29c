package client

import (
	"net/http"
	"time"
)

type Clients struct {
	*DictionaryAPI
}

func InitClients(dictionaryURL string, timeout time.Duration) Clients {
	return Clients{
		DictionaryAPI: NewDictionaryAPI(dictionaryURL, &http.Client{Timeout: timeout}),
	}
}
