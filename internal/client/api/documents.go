package api

// GraphQL operation documents for the LMS endpoint. Field selections mirror
// what the terminal views actually render.

const getCoursesDoc = `
query GetCourses($page: Int!, $pageSize: Int!) {
  courses(page: $page, pageSize: $pageSize) {
    content {
      id
      instructorId
      title
      description
      status
      createdAt
      publishedAt
      lessons { id title orderIndex }
      assignments { id title instructions dueAt maxPoints }
    }
    pageInfo { page pageSize totalElements totalPages hasNext }
  }
}`

const getCourseDoc = `
query GetCourse($id: ID!) {
  course(id: $id) {
    id
    instructorId
    title
    description
    status
    createdAt
    publishedAt
    lessons {
      id
      title
      orderIndex
      item { id title description tags bodyMarkdown createdAt updatedAt }
    }
    assignments { id title instructions dueAt maxPoints allowLate }
  }
}`

const getMyEnrollmentsDoc = `
query GetMyEnrollments($page: Int!, $pageSize: Int!) {
  myEnrollments(page: $page, pageSize: $pageSize) {
    content {
      id
      courseId
      studentId
      enrolledAt
      status
      course {
        id
        instructorId
        title
        description
        status
        createdAt
        publishedAt
        lessons { id title orderIndex }
        assignments { id title instructions dueAt maxPoints }
      }
    }
    pageInfo { page pageSize totalElements totalPages hasNext }
  }
}`

const enrollInCourseDoc = `
mutation EnrollInCourse($courseId: ID!) {
  enrollInCourse(courseId: $courseId) {
    id
    courseId
    studentId
    enrolledAt
    status
    course { id title description status }
  }
}`

const cancelEnrollmentDoc = `
mutation CancelEnrollment($enrollmentId: ID!) {
  cancelEnrollment(enrollmentId: $enrollmentId) {
    id
    courseId
    studentId
    enrolledAt
    status
  }
}`

const getLessonDoc = `
query GetLesson($id: ID!) {
  lesson(id: $id) {
    id
    courseId
    title
    orderIndex
    item { id title description tags bodyMarkdown createdAt updatedAt }
  }
}`

const getItemDoc = `
query GetItem($id: ID!) {
  item(id: $id) {
    id
    lessonId
    title
    description
    tags
    bodyMarkdown
    createdAt
    updatedAt
  }
}`

const getItemsDoc = `
query GetItems($search: String, $page: Int!, $pageSize: Int!) {
  items(search: $search, page: $page, pageSize: $pageSize) {
    content {
      id
      lessonId
      title
      description
      tags
      bodyMarkdown
      createdAt
      updatedAt
    }
    pageInfo { page pageSize totalElements totalPages hasNext }
  }
}`

const createItemDoc = `
mutation CreateItem($input: ItemCreateInput!) {
  createItem(input: $input) {
    id
    lessonId
    title
    description
    tags
    bodyMarkdown
    createdAt
    updatedAt
  }
}`

const updateItemDoc = `
mutation UpdateItem($id: ID!, $input: ItemUpdateInput!) {
  updateItem(id: $id, input: $input) {
    id
    lessonId
    title
    description
    tags
    bodyMarkdown
    createdAt
    updatedAt
  }
}`

const deleteItemDoc = `
mutation DeleteItem($id: ID!) {
  deleteItem(id: $id)
}`

const createLessonDoc = `
mutation CreateLesson($input: LessonCreateInput!) {
  createLesson(input: $input) {
    id
    courseId
    title
    orderIndex
  }
}`

const getAssignmentDoc = `
query GetAssignment($id: ID!) {
  assignment(id: $id) {
    id
    courseId
    lessonId
    title
    instructions
    maxPoints
    allowLate
    dueAt
  }
}`

const submitDoc = `
mutation Submit($assignmentId: ID!, $artifactUrl: String!) {
  submit(assignmentId: $assignmentId, artifactUrl: $artifactUrl) {
    id
    assignmentId
    courseId
    studentId
    submittedAt
    artifactUrl
    status
    score
    feedback
    version
  }
}`

const mySubmissionsDoc = `
query MySubmissions($page: Int!, $pageSize: Int!) {
  mySubmissions(page: $page, pageSize: $pageSize) {
    content {
      id
      assignmentId
      courseId
      studentId
      submittedAt
      artifactUrl
      status
      score
      feedback
      version
    }
    pageInfo { page pageSize totalElements totalPages hasNext }
  }
}`

const submissionsByCourseDoc = `
query SubmissionsByCourse($courseId: ID!, $page: Int!, $pageSize: Int!) {
  submissionsByCourse(courseId: $courseId, page: $page, pageSize: $pageSize) {
    content {
      id
      assignmentId
      courseId
      studentId
      submittedAt
      artifactUrl
      status
      score
      feedback
      version
    }
    pageInfo { page pageSize totalElements totalPages hasNext }
  }
}`
