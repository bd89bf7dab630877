package sui

import "fmt"

type Network string

const (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Devnet   Network = "devnet"
	Localnet Network = "localnet"
)

// FullnodeURL returns the public fullnode of the network.
func (n Network) FullnodeURL() (string, error) {
	switch n {
	case Mainnet, Testnet, Devnet:
		return fmt.Sprintf("https://fullnode.%s.sui.io:443", n), nil
	case Localnet:
		return "http://127.0.0.1:9000", nil
	default:
		return "", fmt.Errorf("unknown sui network %s", n)
	}
}

// Chain is the wallet chain identifier of the network.
func (n Network) Chain() string {
	return fmt.Sprintf("sui:%s", n)
}
