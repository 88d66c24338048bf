package analyzer

import (
	"fmt"

	"github.com/sporadisk/mylog/client/publish"
	"github.com/sporadisk/mylog/config"
	"github.com/sporadisk/mylog/parameter"
)

func LoadPublisher(conf *config.PublisherConfig) (Publisher, error) {
	switch parameter.Clean(conf.Name) {
	case "http":
		return HttpPublisher(conf.Params)
	default:
		return nil, fmt.Errorf("unrecognized publisher: %s", conf.Name)
	}
}

func getParams(params map[string]string, required ...string) (map[string]string, error) {
	result := make(map[string]string)
	for _, key := range required {
		value, ok := params[key]
		if !ok {
			return nil, fmt.Errorf("missing parameter: %s", key)
		}
		result[key] = value
	}

	return result, nil
}

func HttpPublisher(params map[string]string) (*publish.Client, error) {
	p, err := getParams(params, "endpoint", "tokenUrl", "clientId", "secret")
	if err != nil {
		return nil, fmt.Errorf("getParams: %w", err)
	}

	client := &publish.Client{
		Endpoint:     p["endpoint"],
		TokenURL:     p["tokenUrl"],
		ClientID:     p["clientId"],
		ClientSecret: p["secret"],
	}

	err = client.Init()
	if err != nil {
		return nil, fmt.Errorf("publish.Client.Init: %w", err)
	}

	return client, nil
}
