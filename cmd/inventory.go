package cmd

// inventory models the YAML file listing the clusters to survey. It carries
// report metadata, connection defaults applied to every target, an optional
// domain selection and the targets themselves.
type inventory struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Defaults    inventoryDefaults `yaml:"defaults,omitempty"`
	Domains     []string          `yaml:"domains,omitempty"`
	Targets     []inventoryTarget `yaml:"targets"`
}

// inventoryDefaults fill in fields a target leaves empty. CLI flags take
// precedence over these defaults when set.
type inventoryDefaults struct {
	User        string `yaml:"user"`
	Port        int    `yaml:"port"`
	PasswordEnv string `yaml:"password_env"`
	HelperPath  string `yaml:"helper_path"`
}

// inventoryTarget is one cluster. "address" is preferred; "host" is also
// accepted during unmarshal.
type inventoryTarget struct {
	Name    string `yaml:"name,omitempty"`
	Address string `yaml:"address"`
	User    string `yaml:"user,omitempty"`
	// Password is accepted for lab use; prefer PasswordEnv.
	Password    string `yaml:"password,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty"`
	HelperPath  string `yaml:"helper_path,omitempty"`
}
