package crypto

// HashVersion is the leading version byte of a base58 encoded ledger value
type HashVersion byte

// well known accounts
const (
	ACCOUNT_ZERO = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	ACCOUNT_ONE  = "rrrrrrrrrrrrrrrrrrrrBZbvji"
	ROOT         = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
)

// ALPHABET is the ripple base58 alphabet
const ALPHABET = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// hash versions
const (
	RIPPLE_ACCOUNT_ID      HashVersion = 0
	RIPPLE_NODE_PUBLIC     HashVersion = 28
	RIPPLE_NODE_PRIVATE    HashVersion = 32
	RIPPLE_FAMILY_SEED     HashVersion = 33
	RIPPLE_ACCOUNT_PRIVATE HashVersion = 34
	RIPPLE_ACCOUNT_PUBLIC  HashVersion = 35
)

var hashTypes = map[HashVersion]struct {
	Description string
	Payload     int
}{
	RIPPLE_ACCOUNT_ID:      {"Short name for sending funds to an account.", 20},
	RIPPLE_NODE_PUBLIC:     {"Validation public key for node.", 33},
	RIPPLE_NODE_PRIVATE:    {"Validation private key for node.", 32},
	RIPPLE_FAMILY_SEED:     {"Family seed.", 16},
	RIPPLE_ACCOUNT_PRIVATE: {"Account private key.", 32},
	RIPPLE_ACCOUNT_PUBLIC:  {"Account public key.", 33},
}

func describe(version HashVersion) string {
	if t, ok := hashTypes[version]; ok {
		return t.Description
	}
	return "Unknown"
}
