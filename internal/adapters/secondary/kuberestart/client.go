package kuberestart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	log "github.com/sirupsen/logrus"

	"build-promotion-service/internal/config"
	"build-promotion-service/internal/core/domain"
	ports "build-promotion-service/internal/core/ports/output"
)

var (
	deploymentGVR = schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"}
	podGVR        = schema.GroupVersionResource{Resource: "pods", Version: "v1"}
)

type client struct {
	client    dynamic.Interface
	namespace string
	timeout   time.Duration
}

// NewClient creates a ProcessSupervisor backed by the Kubernetes API:
// restarting means stamping the workload's pod template with a restartedAt
// annotation, the same mechanism `kubectl rollout restart` uses.
func NewClient(cfg *config.KubernetesConfig, restartTimeout time.Duration) (ports.ProcessSupervisor, error) {
	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		// Try default kubeconfig location
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	dyn, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "default"
	}
	if restartTimeout == 0 {
		restartTimeout = 10 * time.Second
	}

	return &client{client: dyn, namespace: namespace, timeout: restartTimeout}, nil
}

func (c *client) Restart(ctx context.Context, service string) ports.RestartOutcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	patch := fmt.Sprintf(
		`{"spec":{"template":{"metadata":{"annotations":{"kubectl.kubernetes.io/restartedAt":%q}}}}}`,
		time.Now().UTC().Format(time.RFC3339),
	)

	_, err := c.client.Resource(deploymentGVR).
		Namespace(c.namespace).
		Patch(ctx, service, types.MergePatchType, []byte(patch), metav1.PatchOptions{})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return ports.RestartTimedOut
		}
		log.WithError(err).WithField("deployment", service).Warn("rollout restart failed")
		return ports.RestartFailed
	}
	return ports.RestartSucceeded
}

// Status lists the namespace's pods as supervisor process rows. PIDs do not
// exist here; the pod phase stands in for the supervisor state.
func (c *client) Status(ctx context.Context) ([]domain.ServiceProcess, error) {
	list, err := c.client.Resource(podGVR).
		Namespace(c.namespace).
		List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	procs := make([]domain.ServiceProcess, 0, len(list.Items))
	for _, item := range list.Items {
		procs = append(procs, podToProcess(&item))
	}
	return procs, nil
}

func podToProcess(pod *unstructured.Unstructured) domain.ServiceProcess {
	proc := domain.ServiceProcess{Name: pod.GetName()}

	if phase, ok, _ := unstructured.NestedString(pod.Object, "status", "phase"); ok {
		proc.State = phase
	}
	if started, ok, _ := unstructured.NestedString(pod.Object, "status", "startTime"); ok {
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			proc.Uptime = time.Since(t).Round(time.Second).String()
		}
	}
	return proc
}
