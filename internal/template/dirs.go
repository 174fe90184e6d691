package template

import "path/filepath"

const (
	// ContainerSkeletonDir is the override directory inside a container.
	ContainerSkeletonDir = "Resources/modelforge/skeleton"

	// ProjectSkeletonDir is the override directory at the project root.
	ProjectSkeletonDir = ".modelforge/skeleton"
)

// SkeletonDirs returns the override directories in search order: the
// container, the project, then any configured directories. Relative
// configured directories are taken from the project root.
func SkeletonDirs(containerPath, projectRoot string, configured []string) []string {
	var dirs []string
	if containerPath != "" {
		dirs = append(dirs, filepath.Join(containerPath, filepath.FromSlash(ContainerSkeletonDir)))
	}
	if projectRoot != "" {
		dirs = append(dirs, filepath.Join(projectRoot, filepath.FromSlash(ProjectSkeletonDir)))
	}
	for _, dir := range configured {
		if !filepath.IsAbs(dir) && projectRoot != "" {
			dir = filepath.Join(projectRoot, dir)
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
