package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlUnmarshal decodes an inventory document.
func yamlUnmarshal(b []byte, out any) error {
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

// UnmarshalYAML supports both "address" and "host" keys for flexibility
func (t *inventoryTarget) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Name        string `yaml:"name"`
		Address     string `yaml:"address"`
		Host        string `yaml:"host"`
		User        string `yaml:"user"`
		Password    string `yaml:"password"`
		PasswordEnv string `yaml:"password_env"`
		HelperPath  string `yaml:"helper_path"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	t.Name = aux.Name
	t.Address = aux.Address
	if t.Address == "" {
		t.Address = aux.Host
	}
	t.User = aux.User
	t.Password = aux.Password
	t.PasswordEnv = aux.PasswordEnv
	t.HelperPath = aux.HelperPath
	return nil
}
