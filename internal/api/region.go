package api

import "strings"

const (
	ClusterAmericas = "americas"
	ClusterEurope   = "europe"
	ClusterAsia     = "asia"

	DefaultCluster = ClusterAmericas
)

var regionClusters = map[string]string{
	"na1":  ClusterAmericas,
	"br1":  ClusterAmericas,
	"lan1": ClusterAmericas,
	"las1": ClusterAmericas,
	"oc1":  ClusterAmericas,
	"euw1": ClusterEurope,
	"eun1": ClusterEurope,
	"tr1":  ClusterEurope,
	"ru":   ClusterEurope,
	"jp1":  ClusterAsia,
	"kr1":  ClusterAsia,
	"ph2":  ClusterAsia,
	"sg2":  ClusterAsia,
	"th2":  ClusterAsia,
	"tw2":  ClusterAsia,
	"vn2":  ClusterAsia,
}

// ClusterFor maps a platform region to its routing cluster. Unknown regions
// map to DefaultCluster with ok=false.
func ClusterFor(region string) (cluster string, ok bool) {
	cluster, ok = regionClusters[strings.ToLower(region)]
	if !ok {
		return DefaultCluster, false
	}
	return cluster, true
}
