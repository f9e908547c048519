package params

import (
	"errors"
	"net/url"

	"github.com/aqrl/xrpl-toolkit/xrpl/crypto"
)

// CheckConfig check tool config
func (c *ToolConfig) CheckConfig() (err error) {
	if c.Network == "" {
		return errors.New("must config non empty 'Network'")
	}
	if c.Remote == nil {
		return errors.New("must config 'Remote'")
	}
	if err = c.Remote.CheckConfig(); err != nil {
		return err
	}
	if c.RPCTimeout < 0 {
		return errors.New("'RPCTimeout' must not be negative")
	}
	if c.Faucet != nil {
		if err = c.Faucet.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check network endpoints
func (c *NetworkConfig) CheckConfig() error {
	if err := checkURL(c.WebsocketURL, "ws", "wss"); err != nil {
		return errors.New("wrong 'Remote.WebsocketURL': " + err.Error())
	}
	if err := checkURL(c.JSONRPCURL, "http", "https"); err != nil {
		return errors.New("wrong 'Remote.JSONRPCURL': " + err.Error())
	}
	if c.FaucetURL != "" {
		if err := checkURL(c.FaucetURL, "http", "https"); err != nil {
			return errors.New("wrong 'Remote.FaucetURL': " + err.Error())
		}
	}
	return nil
}

// CheckConfig check faucet config
func (c *FaucetConfig) CheckConfig() error {
	if c.MaxAttempts < 0 {
		return errors.New("'Faucet.MaxAttempts' must not be negative")
	}
	if c.Algorithm != "" {
		if _, err := crypto.ParseAlgorithm(c.Algorithm); err != nil {
			return errors.New("wrong 'Faucet.Algorithm': " + err.Error())
		}
	}
	return nil
}

func checkURL(rawurl string, schemes ...string) error {
	if rawurl == "" {
		return errors.New("empty url")
	}
	u, err := url.Parse(rawurl)
	if err != nil {
		return err
	}
	for _, scheme := range schemes {
		if u.Scheme == scheme {
			if u.Host == "" {
				return errors.New("no host in " + rawurl)
			}
			return nil
		}
	}
	return errors.New("unsupported scheme " + u.Scheme)
}
