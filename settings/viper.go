package settings

import "github.com/spf13/viper"

// ViperStore exposes a *viper.Viper as the persisted settings tier.
// Viper keys are case-insensitive, so DEBUG and debug resolve alike.
type ViperStore struct {
	v *viper.Viper
}

// NewViperStore wraps v. A nil v uses the viper global instance.
func NewViperStore(v *viper.Viper) *ViperStore {
	if v == nil {
		v = viper.GetViper()
	}
	return &ViperStore{v: v}
}

// Get implements Store.
func (s *ViperStore) Get(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	if !s.v.IsSet(key) {
		return "", ErrKeyNotFound
	}
	return s.v.GetString(key), nil
}
