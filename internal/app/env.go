package app

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DevspaceEnv names the devspace the session runs inside, when set.
const DevspaceEnv = "STATUSKIT_DEVSPACE"

// Environment is the result of one pass of the environment probes. Empty
// fields mean "unknown" and render as omitted segments.
type Environment struct {
	Devspace          string
	Hostname          string
	AWSProfile        string
	KubernetesContext string
}

// ProbeEnvironment gathers every environment tag in one pass. cfg.Devspace
// overrides the environment variable; hostname is suppressed when the config
// turns it off.
func ProbeEnvironment(cfg Config) Environment {
	env := Environment{
		Devspace:          cfg.Devspace,
		AWSProfile:        os.Getenv("AWS_PROFILE"),
		KubernetesContext: kubernetesContext(),
	}
	if env.Devspace == "" {
		env.Devspace = os.Getenv(DevspaceEnv)
	}
	if cfg.ShowHostname {
		if hostname, err := os.Hostname(); err == nil {
			env.Hostname = hostname
		}
	}
	return env
}

// kubernetesContext reads current-context from the active kubeconfig.
// Any failure means no tag.
func kubernetesContext() string {
	path := os.Getenv("KUBECONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		path = filepath.Join(home, ".kube", "config")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var kubeconfig struct {
		CurrentContext string `yaml:"current-context"`
	}
	if err := yaml.Unmarshal(data, &kubeconfig); err != nil {
		return ""
	}
	return kubeconfig.CurrentContext
}
